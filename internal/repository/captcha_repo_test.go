package repository

import (
	"context"
	"testing"
	"time"

	"cloudshop/internal/model"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCaptchaRepoMock(t *testing.T) (CaptchaRepository, pgxmock.PgxPoolIface) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewCaptchaRepository(mock), mock
}

func TestCaptchaRepository_Save(t *testing.T) {
	repo, mock := newCaptchaRepoMock(t)

	now := time.Now()
	captcha := &model.Captcha{ID: "CAPabc", Text: "A7K2MN", ExpiresAt: now.Add(5 * time.Minute), Used: false, CreatedAt: now}

	mock.ExpectExec("DELETE FROM captchas WHERE expires_at").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec("INSERT INTO captchas").
		WithArgs(captcha.ID, captcha.Text, captcha.ExpiresAt, captcha.Used, captcha.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.Save(context.Background(), captcha)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCaptchaRepository_Verify_Match(t *testing.T) {
	repo, mock := newCaptchaRepoMock(t)

	now := time.Now()
	mock.ExpectQuery("SELECT id, text, expires_at, used, created_at FROM captchas").
		WithArgs("CAPabc", "A7K2MN").
		WillReturnRows(pgxmock.NewRows([]string{"id", "text", "expires_at", "used", "created_at"}).
			AddRow("CAPabc", "A7K2MN", now.Add(4*time.Minute), false, now))

	c, err := repo.Verify(context.Background(), "CAPabc", "A7K2MN")
	assert.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "CAPabc", c.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCaptchaRepository_Verify_NoMatch(t *testing.T) {
	repo, mock := newCaptchaRepoMock(t)

	mock.ExpectQuery("SELECT id, text, expires_at, used, created_at FROM captchas").
		WithArgs("CAPabc", "WRONG1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "text", "expires_at", "used", "created_at"}))

	c, err := repo.Verify(context.Background(), "CAPabc", "WRONG1")
	assert.NoError(t, err)
	assert.Nil(t, c)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCaptchaRepository_MarkUsed(t *testing.T) {
	repo, mock := newCaptchaRepoMock(t)

	mock.ExpectExec("UPDATE captchas SET used").
		WithArgs("CAPabc").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.MarkUsed(context.Background(), "CAPabc")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
