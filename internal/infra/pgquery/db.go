// Package pgquery holds the SQL behind the read stores. Every method takes
// the DBTX to run on so callers choose between the pool and a transaction.
package pgquery

import (
	"therapist-management-saas/internal/infra/db"
)

type DBTX = db.DBTX

type Queries struct{}

func New() *Queries {
	return &Queries{}
}
