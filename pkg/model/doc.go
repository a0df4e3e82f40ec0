// Package model holds the gorm models for every persisted entity. Models
// are thin rows plus the computed accessors the access-control core and
// the API serializers need; business rules live in the stores.
package model
