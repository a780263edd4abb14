package newsrepo

const (
	sqlCreateNews = `INSERT INTO news_items (title, message, created_at) VALUES ($1, $2, $3) RETURNING *;`

	sqlSelectNews = `SELECT * FROM news_items ORDER BY created_at DESC, id DESC;`
)
