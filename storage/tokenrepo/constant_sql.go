package tokenrepo

const (
	sqlUpsertToken = `INSERT INTO expo_tokens (token, platform, created_at, last_seen_at)
		VALUES ($1, $2, $3, $3)
		ON CONFLICT (token) DO UPDATE SET
			last_seen_at = EXCLUDED.last_seen_at,
			platform = CASE
				WHEN EXCLUDED.platform <> '' THEN EXCLUDED.platform
				ELSE expo_tokens.platform
			END
		RETURNING *;`

	sqlSelectTokens = `SELECT * FROM expo_tokens ORDER BY created_at ASC;`
)
