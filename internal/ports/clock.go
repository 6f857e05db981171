package ports

import "time"

// Clock abstracts time.Now so elapsed time can be tested deterministically
type Clock interface {
	Now() time.Time
}
