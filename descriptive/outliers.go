package descriptive

// Bounds is the inclusive range of values Tukey's fences consider normal
type Bounds struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// OutlierReport lists out-of-bounds values along with the fences that
// excluded them
type OutlierReport struct {
	Outliers []float64 `json:"outliers"`
	Bounds   Bounds    `json:"bounds"`
}

// DetectOutliers applies Tukey's fence rule: values beyond 1.5 IQR of the
// first or third quartile are outliers. It reuses Quartiles so the bounds
// match a direct quartile computation on the same sample. Outliers keep
// their input order.
func DetectOutliers(values []float64) OutlierReport {
	q := Quartiles(values)
	iqr := q.Q3 - q.Q1

	bounds := Bounds{
		Lower: q.Q1 - 1.5*iqr,
		Upper: q.Q3 + 1.5*iqr,
	}

	var outliers []float64
	for _, v := range values {
		if v < bounds.Lower || v > bounds.Upper {
			outliers = append(outliers, v)
		}
	}

	return OutlierReport{Outliers: outliers, Bounds: bounds}
}
