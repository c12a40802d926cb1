package model

// All lists every table owned or read by the lineage store, in migration order.
func All() []any {
	return []any{
		&RegisteredModel{},
		&ModelVersion{},
		&Dataset{},
		&ModelDatasetLink{},
		&ModelDependency{},
	}
}
