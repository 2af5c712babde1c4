package validate

import (
	"fmt"
	"regexp"

	"dqkit/domain/schema"
)

var identifierPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// ColumnDefinition checks a single column definition. All rules are
// evaluated; the result lists every violation.
func ColumnDefinition(col schema.ColumnDefinition) FieldResult {
	var errs []string

	if col.Name == "" {
		errs = append(errs, "column name is required")
	} else if !identifierPattern.MatchString(col.Name) {
		errs = append(errs, fmt.Sprintf("column name %q is not a valid identifier", col.Name))
	}

	if col.DataType == "" {
		errs = append(errs, "data type is required")
	} else if !schema.KnownDataTypes[col.DataType] {
		errs = append(errs, fmt.Sprintf("unknown data type %q", col.DataType))
	}

	if col.DataType.IsSized() && col.MaxLength <= 0 {
		errs = append(errs, fmt.Sprintf("type %q requires a positive max length", col.DataType))
	}

	if col.DataType == schema.TypeDecimal {
		if col.Precision <= 0 {
			errs = append(errs, "decimal type requires a positive precision")
		}
		if col.Scale < 0 {
			errs = append(errs, "scale cannot be negative")
		}
		if col.Precision > 0 && col.Scale > col.Precision {
			errs = append(errs, fmt.Sprintf("scale %d exceeds precision %d", col.Scale, col.Precision))
		}
	}

	return newFieldResult(errs)
}

// TableSchema checks a table definition and every column in it. Column
// violations are prefixed with the column name (or its position when the
// name is missing).
func TableSchema(table schema.TableSchema) FieldResult {
	var errs []string

	if table.Name == "" {
		errs = append(errs, "table name is required")
	} else if !identifierPattern.MatchString(table.Name) {
		errs = append(errs, fmt.Sprintf("table name %q is not a valid identifier", table.Name))
	}

	if len(table.Columns) == 0 {
		errs = append(errs, "table must define at least one column")
	}

	seen := make(map[string]bool, len(table.Columns))
	for i, col := range table.Columns {
		label := col.Name
		if label == "" {
			label = fmt.Sprintf("column %d", i+1)
		}

		if col.Name != "" {
			if seen[col.Name] {
				errs = append(errs, fmt.Sprintf("duplicate column name %q", col.Name))
			}
			seen[col.Name] = true
		}

		for _, colErr := range ColumnDefinition(col).Errors {
			errs = append(errs, fmt.Sprintf("%s: %s", label, colErr))
		}
	}

	for _, pk := range table.PrimaryKeys {
		if !seen[pk] {
			errs = append(errs, fmt.Sprintf("primary key %q is not a defined column", pk))
		}
	}

	return newFieldResult(errs)
}

// DiscoveryConfig checks a discovery job configuration.
func DiscoveryConfig(cfg schema.DiscoveryConfig) FieldResult {
	var errs []string

	if cfg.Name == "" {
		errs = append(errs, "discovery name is required")
	}

	if r := ConnectionString(cfg.ConnectionString); !r.IsValid {
		errs = append(errs, r.Error)
	}

	// Schedule is optional; empty means on-demand discovery
	if cfg.Schedule != "" {
		if r := CronExpression(cfg.Schedule); !r.IsValid {
			errs = append(errs, fmt.Sprintf("schedule: %s", r.Error))
		}
	}

	if cfg.SampleSize < 0 {
		errs = append(errs, "sample size cannot be negative")
	}
	if cfg.TimeoutSeconds < 0 {
		errs = append(errs, "timeout cannot be negative")
	}

	return newFieldResult(errs)
}

// QualityRuleConfig checks a quality rule configuration.
func QualityRuleConfig(cfg schema.QualityRuleConfig) FieldResult {
	var errs []string

	if cfg.Name == "" {
		errs = append(errs, "rule name is required")
	}

	if cfg.Dimension == "" {
		errs = append(errs, "dimension is required")
	} else if !schema.KnownDimensions[cfg.Dimension] {
		errs = append(errs, fmt.Sprintf("unknown dimension %q", cfg.Dimension))
	}

	if cfg.Threshold < 0 || cfg.Threshold > 1 {
		errs = append(errs, fmt.Sprintf("threshold must be within [0, 1], got %v", cfg.Threshold))
	}

	switch cfg.RuleType {
	case schema.RuleThreshold:
		// Threshold alone is enough
	case schema.RuleExpression:
		if cfg.Expression == "" {
			errs = append(errs, "expression rules require an expression")
		}
	case "":
		errs = append(errs, "rule type is required")
	default:
		errs = append(errs, fmt.Sprintf("unknown rule type %q", cfg.RuleType))
	}

	return newFieldResult(errs)
}
