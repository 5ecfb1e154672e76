package betay

import (
	"github.com/Eventhenoob/betay-server/internal/db"
)

type News struct {
	db.News
}

// Page is one listing page together with collection-wide totals.
type Page struct {
	News       []News
	TotalNews  int
	TotalPages int
}
