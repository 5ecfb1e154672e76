// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"
)

var Columns = struct {
	GooseDbVersion struct {
		ID, VersionID, IsApplied, Tstamp string
	}
	News struct {
		ID, Title, CreatedBy, Image, ShortDescription, Content, CreatedAt string
	}
	Subscriber struct {
		ID, Email, SubscribedAt string
	}
}{
	GooseDbVersion: struct {
		ID, VersionID, IsApplied, Tstamp string
	}{
		ID:        "id",
		VersionID: "version_id",
		IsApplied: "is_applied",
		Tstamp:    "tstamp",
	},
	News: struct {
		ID, Title, CreatedBy, Image, ShortDescription, Content, CreatedAt string
	}{
		ID:               "newsId",
		Title:            "title",
		CreatedBy:        "createdBy",
		Image:            "image",
		ShortDescription: "shortDescription",
		Content:          "content",
		CreatedAt:        "createdAt",
	},
	Subscriber: struct {
		ID, Email, SubscribedAt string
	}{
		ID:           "subscriberId",
		Email:        "email",
		SubscribedAt: "subscribedAt",
	},
}

var Tables = struct {
	GooseDbVersion struct {
		Name, Alias string
	}
	News struct {
		Name, Alias string
	}
	Subscriber struct {
		Name, Alias string
	}
}{
	GooseDbVersion: struct {
		Name, Alias string
	}{
		Name:  "goose_db_version",
		Alias: "t",
	},
	News: struct {
		Name, Alias string
	}{
		Name:  "news",
		Alias: "t",
	},
	Subscriber: struct {
		Name, Alias string
	}{
		Name:  "subscribers",
		Alias: "t",
	},
}

type GooseDbVersion struct {
	tableName struct{} `pg:"goose_db_version,alias:t,discard_unknown_columns"`

	ID        int       `pg:"id,pk"`
	VersionID int64     `pg:"version_id,use_zero"`
	IsApplied bool      `pg:"is_applied,use_zero"`
	Tstamp    time.Time `pg:"tstamp,use_zero"`
}

type News struct {
	tableName struct{} `pg:"news,alias:t,discard_unknown_columns"`

	ID               int       `pg:"newsId,pk"`
	Title            string    `pg:"title,use_zero"`
	CreatedBy        string    `pg:"createdBy,use_zero"`
	Image            string    `pg:"image,use_zero"`
	ShortDescription string    `pg:"shortDescription,use_zero"`
	Content          string    `pg:"content,use_zero"`
	CreatedAt        time.Time `pg:"createdAt,use_zero"`
}

type Subscriber struct {
	tableName struct{} `pg:"subscribers,alias:t,discard_unknown_columns"`

	ID           int       `pg:"subscriberId,pk"`
	Email        string    `pg:"email,use_zero"`
	SubscribedAt time.Time `pg:"subscribedAt,use_zero"`
}
