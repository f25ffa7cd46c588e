package xslog

import (
	"log/slog"
	"time"
)

const (
	keyError = "error"
)

func Error(err error) slog.Attr {
	return slog.String(keyError, err.Error())
}

func Duration(duration time.Duration) slog.Attr {
	const durationKey = "duration"
	return slog.Duration(durationKey, duration)
}

func Key(key string) slog.Attr {
	const keyKey = "key"
	return slog.String(keyKey, key)
}

func Date(date string) slog.Attr {
	const dateKey = "date"
	return slog.String(dateKey, date)
}

func Minutes(minutes int) slog.Attr {
	const minutesKey = "minutes"
	return slog.Int(minutesKey, minutes)
}

func Origin(origin string) slog.Attr {
	const originKey = "origin"
	return slog.String(originKey, origin)
}

func Revision(revision int64) slog.Attr {
	const revisionKey = "revision"
	return slog.Int64(revisionKey, revision)
}
