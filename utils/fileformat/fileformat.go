package fileformat

import (
	"path"

	"github.com/google/uuid"
)

// UniqueFileName builds a collision-free object key for an uploaded
// file, keeping the original extension.
func UniqueFileName(filename string) string {
	return uuid.New().String() + path.Ext(filename)
}
