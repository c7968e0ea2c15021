// Package generated holds code produced from api/openapi.yaml.
package generated

//go:generate oapi-codegen -config ../../api/oapi-codegen.yaml ../../api/openapi.yaml
