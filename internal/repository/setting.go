package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	inErrors "github.com/temizmarket/eticaret/internal/errors"
)

type Setting struct {
	Key       string
	Value     []byte
	UpdatedAt pgtype.Timestamptz
}

func scanSetting(row pgx.Row) (Setting, error) {
	setting := Setting{}
	err := row.Scan(&setting.Key, &setting.Value, &setting.UpdatedAt)
	return setting, err
}

func (q *Queries) FindSettings(c context.Context) ([]Setting, error) {
	rows, err := q.pool.Query(c, `select key, value, updated_at from settings order by key`)
	if err != nil {
		return nil, fmt.Errorf("failed querying settings with error=%w", err)
	}
	defer rows.Close()

	settings := []Setting{}
	for rows.Next() {
		setting, err := scanSetting(rows)
		if err != nil {
			return nil, fmt.Errorf("failed scanning setting with error=%w", err)
		}
		settings = append(settings, setting)
	}
	return settings, rows.Err()
}

func (q *Queries) FindSettingByKey(c context.Context, key string) (Setting, error) {
	row := q.pool.QueryRow(c, `select key, value, updated_at from settings where key = $1`, key)
	setting, err := scanSetting(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Setting{}, inErrors.ErrSettingNotFound
		}
		return Setting{}, fmt.Errorf("failed finding setting by key with error=%w", err)
	}
	return setting, nil
}

func (q *Queries) UpdateSettingByKey(c context.Context, key string, value []byte) (Setting, error) {
	row := q.pool.QueryRow(
		c,
		`insert into settings (key, value)
		values ($1, $2)
		on conflict (key) do update set value = excluded.value, updated_at = now()
		returning key, value, updated_at`,
		key,
		value,
	)
	setting, err := scanSetting(row)
	if err != nil {
		return Setting{}, fmt.Errorf("failed updating setting with error=%w", err)
	}
	return setting, nil
}
