// Command stubsource runs a fake hours endpoint speaking the spreadsheet JSON
// contract, for local development when the real endpoints are unreachable.
// Point an entry in the access file's endpoints map at it:
//
//	endpoints:
//	  josie: http://localhost:9090/
package main

import (
	"log"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	port := os.Getenv("STUB_PORT")
	if port == "" {
		port = "9090"
	}

	e := echo.New()
	e.Use(middleware.Logger())
	e.GET("/", serveHours)

	log.Printf("stub hours source listening on :%s", port)
	if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
		log.Fatalf("stub start: %v", err)
	}
}

func serveHours(c echo.Context) error {
	from, err := time.Parse("2006-01-02", c.QueryParam("from"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid from date")
	}
	to, err := time.Parse("2006-01-02", c.QueryParam("to"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid to date")
	}

	limit := 500
	if v := c.QueryParam("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	rows := make([]map[string]interface{}, 0)
	for day := from; !day.After(to) && len(rows) < limit; day = day.AddDate(0, 0, 1) {
		rows = append(rows, fakeRow(day))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"data": rows})
}

func fakeRow(day time.Time) map[string]interface{} {
	if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
		return map[string]interface{}{
			"Date":        day.Format("2006-01-02"),
			"Events":      "",
			"Status":      "Off",
			"Total Hours": 0,
			"Net Hours":   0,
			"Last Update": time.Now().Format(time.RFC3339),
		}
	}

	hours := 6 + rand.Float64()*4
	return map[string]interface{}{
		"Date":        day.Format("2006-01-02"),
		"Events":      "Venue prep",
		"Start Time":  "09:00",
		"End Time":    "18:00",
		"Status":      "Worked",
		"Total Hours": hours,
		"Net Hours":   hours - 1,
		"Last Update": time.Now().Format(time.RFC3339),
	}
}
