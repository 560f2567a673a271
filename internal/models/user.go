// models содержит доменные сущности tracks-api.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта.
package models

import "time"

// User — учётная запись пользователя.
//
// Особенности:
//   - Username и Email уникальны (Email хранится в нижнем регистре);
//   - PasswordHash — самоописывающий хэш, наружу никогда не отдаётся;
//   - временные метки в UTC.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
