package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/pump-maintenance/internal/model"
	"github.com/iliyamo/pump-maintenance/internal/repository"
)

func TestUserCreateNormalizesUsername(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewUserRepo(db)

	mock.ExpectExec("INSERT INTO users (username, email, password_hash, role) VALUES (?,?,?,?)").
		WithArgs("jdoe", "jdoe@example.com", sqlmock.AnyArg(), "technician").
		WillReturnResult(sqlmock.NewResult(3, 1))

	id, err := repo.Create(context.Background(), "  JDoe ", "jdoe@example.com", "s3cret", model.RoleTechnician, 4)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserCreateDuplicateUsername(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewUserRepo(db)

	mock.ExpectExec("INSERT INTO users (username, email, password_hash, role) VALUES (?,?,?,?)").
		WithArgs("jdoe", "jdoe@example.com", sqlmock.AnyArg(), "viewer").
		WillReturnError(errors.New("Error 1062 (23000): Duplicate entry 'jdoe' for key 'uq_users_username'"))

	_, err := repo.Create(context.Background(), "jdoe", "jdoe@example.com", "s3cret", model.RoleViewer, 4)
	assert.ErrorIs(t, err, repository.ErrUsernameExists)
}

func TestUserGetByUsername(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewUserRepo(db)

	mock.ExpectQuery("SELECT id,username,email,password_hash,role,created_at FROM users WHERE username=? LIMIT 1").
		WithArgs("jdoe").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "role", "created_at"}).
			AddRow(3, "jdoe", "jdoe@example.com", "$2a$04$hash", "admin", time.Now().UTC()))

	u, err := repo.GetByUsername(context.Background(), "JDOE")
	require.NoError(t, err)
	assert.Equal(t, uint64(3), u.ID)
	assert.Equal(t, model.RoleAdmin, u.Role)
}
