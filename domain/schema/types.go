package schema

// DataType represents the declared storage type of a column
type DataType string

const (
	TypeString    DataType = "string"
	TypeVarchar   DataType = "varchar"
	TypeChar      DataType = "char"
	TypeText      DataType = "text"
	TypeInteger   DataType = "integer"
	TypeBigint    DataType = "bigint"
	TypeFloat     DataType = "float"
	TypeDecimal   DataType = "decimal"
	TypeBoolean   DataType = "boolean"
	TypeDate      DataType = "date"
	TypeTimestamp DataType = "timestamp"
	TypeJSON      DataType = "json"
	TypeBinary    DataType = "binary"
)

// KnownDataTypes lists every data type the schema validators accept
var KnownDataTypes = map[DataType]bool{
	TypeString:    true,
	TypeVarchar:   true,
	TypeChar:      true,
	TypeText:      true,
	TypeInteger:   true,
	TypeBigint:    true,
	TypeFloat:     true,
	TypeDecimal:   true,
	TypeBoolean:   true,
	TypeDate:      true,
	TypeTimestamp: true,
	TypeJSON:      true,
	TypeBinary:    true,
}

// IsSized reports whether the type carries an explicit maximum length
func (t DataType) IsSized() bool {
	return t == TypeVarchar || t == TypeChar
}

// ColumnDefinition describes a single column of a governed table
type ColumnDefinition struct {
	Name         string   `json:"name"`
	DataType     DataType `json:"data_type"`
	Nullable     bool     `json:"nullable"`
	MaxLength    int      `json:"max_length,omitempty"` // Required > 0 for sized character types
	Precision    int      `json:"precision,omitempty"`  // Decimal types only
	Scale        int      `json:"scale,omitempty"`      // Must not exceed precision
	DefaultValue string   `json:"default_value,omitempty"`
	Description  string   `json:"description,omitempty"`
}

// TableSchema describes a governed table and its columns
type TableSchema struct {
	Name        string             `json:"name"`
	SchemaName  string             `json:"schema_name,omitempty"`
	Columns     []ColumnDefinition `json:"columns"`
	PrimaryKeys []string           `json:"primary_keys,omitempty"`
	Description string             `json:"description,omitempty"`
}

// DiscoveryConfig configures a metadata discovery job against a data source
type DiscoveryConfig struct {
	Name             string   `json:"name"`
	ConnectionString string   `json:"connection_string"`
	Schedule         string   `json:"schedule,omitempty"` // Cron expression, empty means on-demand
	SampleSize       int      `json:"sample_size"`        // Rows sampled per table, 0 means full scan
	TimeoutSeconds   int      `json:"timeout_seconds"`
	IncludePatterns  []string `json:"include_patterns,omitempty"`
	ExcludePatterns  []string `json:"exclude_patterns,omitempty"`
}

// QualityDimension identifies one of the five scored quality dimensions
type QualityDimension string

const (
	DimensionCompleteness QualityDimension = "completeness"
	DimensionUniqueness   QualityDimension = "uniqueness"
	DimensionValidity     QualityDimension = "validity"
	DimensionAccuracy     QualityDimension = "accuracy"
	DimensionConsistency  QualityDimension = "consistency"
)

// KnownDimensions lists every dimension a quality rule may target
var KnownDimensions = map[QualityDimension]bool{
	DimensionCompleteness: true,
	DimensionUniqueness:   true,
	DimensionValidity:     true,
	DimensionAccuracy:     true,
	DimensionConsistency:  true,
}

// RuleType distinguishes threshold rules from expression rules
type RuleType string

const (
	RuleThreshold  RuleType = "threshold"
	RuleExpression RuleType = "expression"
)

// QualityRuleConfig configures a single data-quality rule
type QualityRuleConfig struct {
	Name       string           `json:"name"`
	Dimension  QualityDimension `json:"dimension"`
	RuleType   RuleType         `json:"rule_type"`
	Threshold  float64          `json:"threshold"`            // Must be within [0, 1]
	Expression string           `json:"expression,omitempty"` // Required for expression rules
	Severity   string           `json:"severity,omitempty"`
	Enabled    bool             `json:"enabled"`
}
