package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	orderdomain "cargo-tracker/internal/features/orders/domain"

	"github.com/google/uuid"
)

// Row is one loosely typed spreadsheet row as produced by the client-side parser.
// Values are strings, numbers, booleans or nil.
type Row map[string]any

// Column aliases, compared after normalizeKey.
var (
	orderIDKeys   = []string{"orderid", "ordernumber", "order", "zahialga"}
	packageIDKeys = []string{"packageid", "trackingnumber", "tracking", "trackingid", "package"}
	phoneKeys     = []string{"phonenumber", "phone", "utas", "mobile"}
	statusKeys    = []string{"status", "intransit", "shipped"}
	sizeKeys      = []string{"sizecategory", "size", "hemjee"}
	dateKeys      = []string{"createdat", "orderdate", "date", "ognoo"}
	noteKeys      = []string{"note", "notes", "comment", "comments"}
)

// sizeLabels maps the lowercased labels staff use in spreadsheets.
var sizeLabels = map[string]orderdomain.SizeCategory{
	"large":  orderdomain.SizeLarge,
	"том":    orderdomain.SizeLarge,
	"medium": orderdomain.SizeMedium,
	"дунд":   orderdomain.SizeMedium,
	"small":  orderdomain.SizeSmall,
	"жижиг":  orderdomain.SizeSmall,
}

// excelEpoch is day zero of the 1900 date system as Excel counts it.
var excelEpoch = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"2006.01.02",
}

// MapRows turns rows into order creation payloads. It never fails a row:
// missing identifiers are synthesized and unknown values fall back to defaults.
func MapRows(rows []Row) []orderdomain.CreateOrderInput {
	out := make([]orderdomain.CreateOrderInput, 0, len(rows))
	for _, row := range rows {
		out = append(out, MapRow(row))
	}
	return out
}

// MapRow maps a single row.
func MapRow(row Row) orderdomain.CreateOrderInput {
	cells := normalizeRow(row)

	in := orderdomain.CreateOrderInput{
		OrderID:         text(lookup(cells, orderIDKeys)),
		PackageID:       text(lookup(cells, packageIDKeys)),
		PhoneNumber:     text(lookup(cells, phoneKeys)),
		Status:          MapStatus(lookup(cells, statusKeys)),
		SizeCategory:    MapSize(text(lookup(cells, sizeKeys))),
		Note:            text(lookup(cells, noteKeys)),
		BackfillHistory: true,
	}

	if in.OrderID == "" {
		in.OrderID = SyntheticID("ORD")
	}
	if in.PackageID == "" {
		in.PackageID = SyntheticID("PKG")
	}
	if at, ok := ParseDate(lookup(cells, dateKeys)); ok {
		in.CreatedAt = &at
	}

	return in
}

// MapStatus is the two-state legacy mapping: a truthy cell means in transit,
// anything else means still in the warehouse.
func MapStatus(v any) orderdomain.OrderStatus {
	if truthy(v) {
		return orderdomain.OrderStatusInTransit
	}
	return orderdomain.OrderStatusInWarehouse
}

// MapSize matches label case-insensitively against the known labels.
func MapSize(label string) orderdomain.SizeCategory {
	if size, ok := sizeLabels[strings.ToLower(strings.TrimSpace(label))]; ok {
		return size
	}
	return orderdomain.SizeUndefined
}

// SyntheticID returns prefix plus a random eight character suffix.
func SyntheticID(prefix string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return prefix + "-" + strings.ToUpper(suffix)
}

// ParseDate accepts time values, the common text layouts and Excel serial numbers.
func ParseDate(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t.UTC(), !t.IsZero()
	case float64:
		return fromSerial(t)
	case int:
		return fromSerial(float64(t))
	case int64:
		return fromSerial(float64(t))
	case string:
		s := strings.TrimSpace(t)
		for _, layout := range dateLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				return parsed.UTC(), true
			}
		}
		if serial, err := strconv.ParseFloat(s, 64); err == nil {
			return fromSerial(serial)
		}
	}
	return time.Time{}, false
}

func fromSerial(days float64) (time.Time, bool) {
	if days <= 0 || math.IsNaN(days) || math.IsInf(days, 0) {
		return time.Time{}, false
	}
	whole := math.Floor(days)
	at := excelEpoch.AddDate(0, 0, int(whole))
	at = at.Add(time.Duration((days - whole) * float64(24*time.Hour)).Round(time.Second))
	return at, true
}

func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t == 1
	case int:
		return t == 1
	case int64:
		return t == 1
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true", "1", "yes", "y":
			return true
		}
	}
	return false
}

// text renders a cell as trimmed text. Numbers keep their digits, so a phone
// stored as 99112233 stays "99112233".
func text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

func normalizeRow(row Row) map[string]any {
	cells := make(map[string]any, len(row))
	for k, v := range row {
		cells[normalizeKey(k)] = v
	}
	return cells
}

// normalizeKey lowercases and drops separators: "Order ID", "order_id" and "orderId" all become "orderid".
func normalizeKey(k string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(k) {
		switch r {
		case ' ', '_', '-', '.':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func lookup(cells map[string]any, keys []string) any {
	for _, k := range keys {
		if v, ok := cells[k]; ok && v != nil {
			return v
		}
	}
	return nil
}
