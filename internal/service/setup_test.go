package service

import (
	"database/sql"
	"testing"
	"time"

	"github.com/alexanderramin/zeitrechner/internal/repository"
	"github.com/alexanderramin/zeitrechner/internal/testutil"
)

const testOrigin = "proc-test"

type testEnv struct {
	db       *sql.DB
	clock    *testutil.Clock
	kv       *repository.SQLiteKVRepo
	settings *repository.SQLiteSettingsRepo
	weekly   *repository.SQLiteWeeklyRepo
	sessions SessionService
	week     WeeklyService
	status   StatusService
}

func setupServices(t *testing.T, now time.Time) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	clock := testutil.NewClock(now)
	kv := repository.NewSQLiteKVRepo(database, testOrigin)
	settings := repository.NewSQLiteSettingsRepo(kv)
	weekly := repository.NewSQLiteWeeklyRepo(kv, nil)

	sessions := NewSessionService(settings, clock.Now)
	week := NewWeeklyService(weekly, testutil.NewTestUoW(database), testOrigin, nil, clock.Now)
	return &testEnv{
		db:       database,
		clock:    clock,
		kv:       kv,
		settings: settings,
		weekly:   weekly,
		sessions: sessions,
		week:     week,
		status:   NewStatusService(sessions, week, clock.Now),
	}
}
