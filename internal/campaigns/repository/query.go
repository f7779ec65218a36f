package repository

import (
	"strconv"

	"salesspark_backend/platform/apperr"
)

const (
	campaignColumns = "id, product, platform, goal, created_at"

	topPlatformQuery = `
		SELECT platform FROM campaigns
		GROUP BY platform
		ORDER BY COUNT(*) DESC, MIN(id) ASC
		LIMIT 1`
)

func buildListQuery(limit int, ph func(n int) string) (string, []any) {
	query := "SELECT " + campaignColumns + " FROM campaigns ORDER BY created_at DESC, id DESC"
	if limit <= 0 {
		return query, nil
	}
	return query + " LIMIT " + ph(1), []any{limit}
}

func buildCountQuery(platform *string, ph func(n int) string) (string, []any) {
	if platform == nil {
		return "SELECT COUNT(*) FROM campaigns", nil
	}
	return "SELECT COUNT(*) FROM campaigns WHERE platform = " + ph(1), []any{*platform}
}

func dollar(n int) string { return "$" + strconv.Itoa(n) }

func question(int) string { return "?" }

func unavailable(op string, err error) error {
	return apperr.Unavailable("campaign store unavailable", err).WithOp(op)
}
