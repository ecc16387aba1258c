package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/adserver-api/infrastructure/database/postgres"
	"github.com/vfg2006/adserver-api/internal/domain"
)

const (
	usersTable           = "users"
	userPublishersTable  = "user_publishers"
	userAdvertisersTable = "user_advertisers"
)

type UserRepository interface {
	CreateUser(user *domain.User) (*domain.User, error)
	UpdateUser(user *domain.User) error
	GetUserByEmail(email string) (*domain.User, error)
	GetUserByID(userID int) (*domain.User, error)
	ListUser() ([]*domain.User, error)
	GetUserLinks(userID int) (publishers []string, advertisers []string, err error)
	LinkUserPublisher(userID int, publisherSlug string) error
	LinkUserAdvertiser(userID int, advertiserSlug string) error
	UnlinkUserPublisher(userID int, publisherSlug string) error
	UnlinkUserAdvertiser(userID int, advertiserSlug string) error
}

type userRepository struct {
	conn *postgres.Connection
}

func NewUserRepository(conn *postgres.Connection) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (r *userRepository) CreateUser(user *domain.User) (*domain.User, error) {
	queryBuilder := squirrel.
		Insert(usersTable).
		Columns("name", "lastname", "email", "password_hash", "active", "role_id", "staff").
		Values(user.Name, user.Lastname, user.Email, user.PasswordHash, user.Active, user.RoleID, user.Staff).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	usersSQL, usersArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(usersSQL, usersArgs...).Scan(&user.ID)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *userRepository) UpdateUser(user *domain.User) error {
	query, args, err := squirrel.
		Update(usersTable).
		Set("name", user.Name).
		Set("lastname", user.Lastname).
		Set("email", user.Email).
		Set("password_hash", user.PasswordHash).
		Set("active", user.Active).
		Set("role_id", user.RoleID).
		Set("staff", user.Staff).
		Set("deleted", user.Deleted).
		Set("deleted_at", user.DeletedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": user.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar usuário: %w", err)
	}

	return nil
}

const userColumns = "id, name, lastname, email, password_hash, active, role_id, staff, deleted, deleted_at, created_at, updated_at"

func (r *userRepository) GetUserByEmail(email string) (*domain.User, error) {
	return r.getUser(squirrel.Eq{"email": email, "deleted": false})
}

func (r *userRepository) GetUserByID(userID int) (*domain.User, error) {
	return r.getUser(squirrel.Eq{"id": userID, "deleted": false})
}

func (r *userRepository) getUser(where squirrel.Eq) (*domain.User, error) {
	query, args, err := squirrel.
		Select(userColumns).
		From(usersTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	user, err := r.scanUser(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear usuário: %w", err)
	}

	return user, nil
}

func (r *userRepository) scanUser(row *sql.Row) (*domain.User, error) {
	user := &domain.User{}
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Lastname,
		&user.Email,
		&user.PasswordHash,
		&user.Active,
		&user.RoleID,
		&user.Staff,
		&user.Deleted,
		&user.DeletedAt,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *userRepository) ListUser() ([]*domain.User, error) {
	query, args, err := squirrel.
		Select(userColumns).
		From(usersTable).
		Where(squirrel.Eq{"deleted": false}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		user := &domain.User{}
		err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Lastname,
			&user.Email,
			&user.PasswordHash,
			&user.Active,
			&user.RoleID,
			&user.Staff,
			&user.Deleted,
			&user.DeletedAt,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear usuários: %w", err)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return users, nil
}

// GetUserLinks retorna os publishers e anunciantes vinculados ao usuário
func (r *userRepository) GetUserLinks(userID int) ([]string, []string, error) {
	publishers, err := r.linkedSlugs(userPublishersTable, "publisher_slug", userID)
	if err != nil {
		return nil, nil, err
	}

	advertisers, err := r.linkedSlugs(userAdvertisersTable, "advertiser_slug", userID)
	if err != nil {
		return nil, nil, err
	}

	return publishers, advertisers, nil
}

func (r *userRepository) linkedSlugs(table, column string, userID int) ([]string, error) {
	query, args, err := squirrel.
		Select(column).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	slugs := make([]string, 0)
	for rows.Next() {
		var slug string
		if err := rows.Scan(&slug); err != nil {
			return nil, fmt.Errorf("erro ao escanear vínculos: %w", err)
		}
		slugs = append(slugs, slug)
	}

	return slugs, rows.Err()
}

func (r *userRepository) LinkUserPublisher(userID int, publisherSlug string) error {
	return r.link(userPublishersTable, "publisher_slug", userID, publisherSlug)
}

func (r *userRepository) LinkUserAdvertiser(userID int, advertiserSlug string) error {
	return r.link(userAdvertisersTable, "advertiser_slug", userID, advertiserSlug)
}

func (r *userRepository) link(table, column string, userID int, slug string) error {
	query, args, err := squirrel.
		Insert(table).
		Columns("user_id", column).
		Values(userID, slug).
		Suffix("ON CONFLICT DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao vincular usuário: %w", err)
	}

	return nil
}

func (r *userRepository) UnlinkUserPublisher(userID int, publisherSlug string) error {
	return r.unlink(userPublishersTable, "publisher_slug", userID, publisherSlug)
}

func (r *userRepository) UnlinkUserAdvertiser(userID int, advertiserSlug string) error {
	return r.unlink(userAdvertisersTable, "advertiser_slug", userID, advertiserSlug)
}

func (r *userRepository) unlink(table, column string, userID int, slug string) error {
	query, args, err := squirrel.
		Delete(table).
		Where(squirrel.Eq{"user_id": userID, column: slug}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao desvincular usuário: %w", err)
	}

	return nil
}
