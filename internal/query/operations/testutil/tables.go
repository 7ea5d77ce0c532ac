package testutil

import (
	"time"

	"github.com/leengari/phonequery/internal/domain/data"
	"github.com/leengari/phonequery/internal/domain/schema"
)

// PhoneSchema returns the schema of the phone usage dataset
func PhoneSchema() *schema.TableSchema {
	return &schema.TableSchema{
		TableName: "phone_data",
		Columns: []schema.Column{
			{Name: "index", Type: schema.ColumnTypeInt, Key: true, NotNull: true},
			{Name: "date", Type: schema.ColumnTypeDateTime},
			{Name: "duration", Type: schema.ColumnTypeFloat},
			{Name: "item", Type: schema.ColumnTypeText},
			{Name: "month", Type: schema.ColumnTypeText},
			{Name: "network", Type: schema.ColumnTypeText},
			{Name: "network_type", Type: schema.ColumnTypeText},
		},
	}
}

func at(day, month, year, hour, minute int) time.Time {
	return time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC)
}

// CreatePhoneTable creates a phone usage table with sample data for testing.
// Row 10 has a NULL network and row 11 a NULL item.
//
// Expected matches per scenario (by key):
//
//	long calls:          2, 9, 13
//	sms on Vodafone:     3
//	data in 2015-01:     5
//	short non-landline:  1, 12
//	network like "da":   0, 1, 3, 5, 6, 13
//	item prefix "ca":    1, 2, 7, 8, 9, 12, 13
func CreatePhoneTable() *schema.Table {
	rows := []data.Row{
		{"index": int64(0), "date": at(15, 10, 2014, 6, 58), "duration": 34.429, "item": "data", "month": "2014-11", "network": "data", "network_type": "data"},
		{"index": int64(1), "date": at(15, 10, 2014, 6, 58), "duration": 13.0, "item": "call", "month": "2014-11", "network": "Vodafone", "network_type": "mobile"},
		{"index": int64(2), "date": at(15, 10, 2014, 14, 46), "duration": 1940.0, "item": "call", "month": "2014-11", "network": "landline", "network_type": "landline"},
		{"index": int64(3), "date": at(15, 10, 2014, 14, 48), "duration": 1.0, "item": "sms", "month": "2014-11", "network": "Vodafone", "network_type": "mobile"},
		{"index": int64(4), "date": at(15, 10, 2014, 17, 27), "duration": 1.0, "item": "sms", "month": "2014-11", "network": "Tesco", "network_type": "mobile"},
		{"index": int64(5), "date": at(2, 1, 2015, 6, 58), "duration": 34.429, "item": "data", "month": "2015-01", "network": "data", "network_type": "data"},
		{"index": int64(6), "date": at(2, 2, 2015, 6, 58), "duration": 34.429, "item": "data", "month": "2015-02", "network": "data", "network_type": "data"},
		{"index": int64(7), "date": at(5, 1, 2015, 11, 12), "duration": 900.0, "item": "call", "month": "2015-01", "network": "Three", "network_type": "mobile"},
		{"index": int64(8), "date": at(6, 1, 2015, 19, 40), "duration": 30.0, "item": "call", "month": "2015-01", "network": "landline", "network_type": "landline"},
		{"index": int64(9), "date": at(14, 2, 2015, 9, 5), "duration": 1500.0, "item": "call", "month": "2015-02", "network": "Meteor", "network_type": "mobile"},
		{"index": int64(10), "date": at(20, 2, 2015, 22, 1), "duration": 1.0, "item": "sms", "month": "2015-02", "network_type": "mobile"},
		{"index": int64(11), "date": at(1, 3, 2015, 8, 30), "duration": 12.0, "month": "2015-03", "network": "O2", "network_type": "mobile"},
		{"index": int64(12), "date": at(3, 3, 2015, 12, 0), "duration": 45.0, "item": "call", "month": "2015-03", "network": "special", "network_type": "special"},
		{"index": int64(13), "date": at(9, 3, 2015, 23, 59), "duration": 2000.0, "item": "call", "month": "2015-03", "network": "Vodafone", "network_type": "mobile"},
	}

	return &schema.Table{
		Name:    "phone_data",
		Path:    "testdata/phone_data.csv",
		Schema:  PhoneSchema(),
		Rows:    rows,
		Indexes: make(map[string]*data.Index),
	}
}
