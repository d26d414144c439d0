package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// GetIDParam parses the ":id" path parameter
func GetIDParam(c *gin.Context) (uint, error) {
	return GetUintParam(c, "id")
}

// GetUintParam parses a positive integer path parameter
func GetUintParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, raw, err)
	}
	if id == 0 {
		return 0, errors.New(name + " must be greater than zero")
	}
	return uint(id), nil
}

// QueryString returns a pointer to the trimmed query value, nil when blank
func QueryString(c *gin.Context, key string) *string {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return nil
	}
	return &v
}

// QueryInt parses an optional integer query parameter
func QueryInt(c *gin.Context, key string) (*int, error) {
	raw := QueryString(c, key)
	if raw == nil {
		return nil, nil
	}
	v, err := strconv.Atoi(*raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", key, err)
	}
	return &v, nil
}

// QueryUint parses an optional unsigned integer query parameter
func QueryUint(c *gin.Context, key string) (*uint, error) {
	raw := QueryString(c, key)
	if raw == nil {
		return nil, nil
	}
	v, err := strconv.ParseUint(*raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", key, err)
	}
	u := uint(v)
	return &u, nil
}

// QueryBool parses an optional boolean query parameter
func QueryBool(c *gin.Context, key string) (*bool, error) {
	raw := QueryString(c, key)
	if raw == nil {
		return nil, nil
	}
	v, err := strconv.ParseBool(*raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", key, err)
	}
	return &v, nil
}

// QueryDecimal parses an optional decimal query parameter
func QueryDecimal(c *gin.Context, key string) (*decimal.Decimal, error) {
	raw := QueryString(c, key)
	if raw == nil {
		return nil, nil
	}
	v, err := decimal.NewFromString(*raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", key, err)
	}
	return &v, nil
}

// QueryTime parses an optional RFC3339 or YYYY-MM-DD query parameter.
// Date-only values are midnight UTC.
func QueryTime(c *gin.Context, key string) (*time.Time, error) {
	raw := QueryString(c, key)
	if raw == nil {
		return nil, nil
	}
	t, err := ParseTime(*raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", key, err)
	}
	return &t, nil
}

// ParseTime accepts RFC3339 timestamps and plain dates, returned in UTC
func ParseTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	return time.Parse(dateLayout, value)
}

// QueryPage reads page and per_page with defaults, ignoring invalid values.
// per_page is capped at maxPerPage.
func QueryPage(c *gin.Context, defaultPerPage, maxPerPage int) (int, int) {
	page := 1
	perPage := defaultPerPage

	if p := c.Query("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v
		}
	}
	if pp := c.Query("per_page"); pp != "" {
		if v, err := strconv.Atoi(pp); err == nil && v > 0 {
			perPage = v
		}
	}
	if maxPerPage > 0 && perPage > maxPerPage {
		perPage = maxPerPage
	}

	return page, perPage
}
