package gorm

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyumbani/homemanager/pkg/model"
)

func TestSlugify(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"Acme Properties", "acme-properties"},
		{"Acme  Properties Ltd.", "acme-properties-ltd"},
		{"  Nairobi West #4  ", "nairobi-west-4"},
		{"ACME", "acme"},
		{"---", ""},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, slugify(tc.in), "slugify(%q)", tc.in)
	}
}

func TestOrganizationCreateResolvesSlugCollision(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewOrganizationsStore(db)

	// "acme" is taken, "acme-1" is free.
	mock.ExpectQuery(`SELECT count`).
		WithArgs("acme").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT count`).
		WithArgs("acme-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "organizations"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	mock.ExpectCommit()

	org := &model.Organization{Name: "Acme"}
	require.NoError(t, s.Create(org))
	assert.Equal(t, "acme-1", org.Slug)
	assert.Equal(t, uint(5), org.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
