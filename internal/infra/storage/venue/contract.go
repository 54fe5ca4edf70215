package venue

import "github.com/m04kA/SMC-VenueBooking/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
