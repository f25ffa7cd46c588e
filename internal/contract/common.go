package contract

import "github.com/alexanderramin/zeitrechner/internal/app"

type WeekView = app.WeekView

type WeekDay = app.WeekDay

type SaveResult = app.SaveResult
