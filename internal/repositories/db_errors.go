package repositories

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// IsDuplicateKeyError checks if the error corresponds to a MySQL/MariaDB
// duplicate key failure. The import reconciler uses it to fall back to an
// auto-generated id when an explicit id cannot be inserted.
func IsDuplicateKeyError(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
