package query

type NetworkHierarchy struct{}
