package category

import "time"

type Category struct {
	ID          uint
	Name        string
	Description string
	Image       string
	CreatedAt   time.Time
}
