package logging

import "time"

// Common field constructors

func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

// Error creates a field for an error value, tolerating nil.
func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Domain field constructors

// AnalyzerID tags every line of one analyzer instance.
func AnalyzerID(id string) Field {
	return Field{Key: "analyzer_id", Value: id}
}

// NodeCount reports the number of graph nodes involved.
func NodeCount(n int) Field {
	return Field{Key: "nodes", Value: n}
}

// EdgeCount reports the number of graph edges involved.
func EdgeCount(n int) Field {
	return Field{Key: "edges", Value: n}
}

// ResultCount reports the size of a query result.
func ResultCount(n int) Field {
	return Field{Key: "results", Value: n}
}
