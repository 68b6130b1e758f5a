package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
	}

	return gormDB, mock, cleanup
}

func conversationRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "title", "creator_id", "is_archived", "type", "group_avatar",
		"last_message_at", "created_at", "updated_at", "deleted_at",
	})
}

func TestConversationRepository_ListForUserOrdersByCoalescedKey(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(
		"ORDER BY COALESCE(conversations.last_message_at, conversations.created_at) DESC, conversations.id DESC")).
		WillReturnRows(conversationRows().
			AddRow("c-quiet", nil, "u1", false, "private", nil, nil, now, now, nil).
			AddRow("c-old", nil, "u1", false, "group", nil, now.Add(-time.Hour), now.Add(-2*time.Hour), now, nil))

	repo := NewConversationRepository(db)
	convs, err := repo.ListForUser(context.Background(), "u1", nil, "", 3)
	require.NoError(t, err)

	require.Len(t, convs, 2)
	assert.Equal(t, "c-quiet", convs[0].ID)
	assert.Nil(t, convs[0].LastMessageAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A conversation with no messages yet carries a NULL last_message_at. The
// cursor bound has to compare against the same coalesced key the ordering
// uses, otherwise such a conversation never matches any bounded page.
func TestConversationRepository_ListForUserCursorKeepsMessagelessRows(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	now := time.Now().UTC()
	before := now.Add(time.Minute)

	mock.ExpectQuery(regexp.QuoteMeta(
		"COALESCE(conversations.last_message_at, conversations.created_at) < ? OR (COALESCE(conversations.last_message_at, conversations.created_at) = ? AND conversations.id < ?)")).
		WillReturnRows(conversationRows().
			AddRow("c-quiet", nil, "u1", false, "private", nil, nil, now, now, nil))

	repo := NewConversationRepository(db)
	convs, err := repo.ListForUser(context.Background(), "u1", &before, "c-top", 3)
	require.NoError(t, err)

	require.Len(t, convs, 1)
	assert.Equal(t, "c-quiet", convs[0].ID)
	assert.Nil(t, convs[0].LastMessageAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConversationRepository_ListForUserQueryError(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT").WillReturnError(assert.AnError)

	repo := NewConversationRepository(db)
	_, err := repo.ListForUser(context.Background(), "u1", nil, "", 3)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
