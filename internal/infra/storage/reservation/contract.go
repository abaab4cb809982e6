package reservation

import "github.com/rmarchan/ReservaCanchasService/pkg/dbmetrics"

// DBExecutor is the query surface the repository needs. Both *sql.DB and
// the metered wrapper satisfy it.
type DBExecutor = dbmetrics.DBExecutor
