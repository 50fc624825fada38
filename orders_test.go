package tcglabels

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const ordersHeader = "FirstName,LastName,Address1,Address2,City,State,PostalCode,Country\n"

func TestParseOrders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		csv  string
		want []Order
	}{
		{
			name: "rows in file order",
			csv: ordersHeader +
				"Jane,Doe,1 Test Ave,,Metropolis,NY,10001,USA\n" +
				"John,Roe,2 Main St,Apt 3,Gotham,NJ,07001,USA\n" +
				"Ann,Poe,3 Elm Rd,None,Springfield,IL,62704,USA\n",
			want: []Order{
				{"FirstName": "Jane", "LastName": "Doe", "Address1": "1 Test Ave", "Address2": "", "City": "Metropolis", "State": "NY", "PostalCode": "10001", "Country": "USA"},
				{"FirstName": "John", "LastName": "Roe", "Address1": "2 Main St", "Address2": "Apt 3", "City": "Gotham", "State": "NJ", "PostalCode": "07001", "Country": "USA"},
				{"FirstName": "Ann", "LastName": "Poe", "Address1": "3 Elm Rd", "Address2": "None", "City": "Springfield", "State": "IL", "PostalCode": "62704", "Country": "USA"},
			},
		},
		{
			name: "columns in any order",
			csv:  "Country,LastName,FirstName\nUSA,Doe,Jane\n",
			want: []Order{{"Country": "USA", "LastName": "Doe", "FirstName": "Jane"}},
		},
		{
			name: "short row leaves trailing columns absent",
			csv:  "FirstName,LastName,Address2\nJane,Doe\n",
			want: []Order{{"FirstName": "Jane", "LastName": "Doe"}},
		},
		{
			name: "extra fields ignored",
			csv:  "FirstName\nJane,unexpected\n",
			want: []Order{{"FirstName": "Jane"}},
		},
		{
			name: "quoted comma and newline",
			csv:  "Address1,City\n\"1 Test Ave, Unit 2\",\"Metro\npolis\"\n",
			want: []Order{{"Address1": "1 Test Ave, Unit 2", "City": "Metro\npolis"}},
		},
		{
			name: "byte order mark stripped",
			csv:  "\ufeffFirstName,LastName\nJane,Doe\n",
			want: []Order{{"FirstName": "Jane", "LastName": "Doe"}},
		},
		{
			name: "crlf line endings",
			csv:  "FirstName,LastName\r\nJane,Doe\r\n",
			want: []Order{{"FirstName": "Jane", "LastName": "Doe"}},
		},
		{
			name: "blank lines skipped",
			csv:  "FirstName\n\nJane\n\nJohn\n",
			want: []Order{{"FirstName": "Jane"}, {"FirstName": "John"}},
		},
		{
			name: "header only",
			csv:  ordersHeader,
			want: []Order{},
		},
		{
			name: "empty input",
			csv:  "",
			want: []Order{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseOrders(strings.NewReader(tt.csv))
			if err != nil {
				t.Fatalf("ParseOrders() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseOrders() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseOrders_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		csv  string
	}{
		{"bare quote in row", ordersHeader + "Jane,Do\"e,1 Test Ave,,Metropolis,NY,10001,USA\n"},
		{"unterminated quote", ordersHeader + "\"Jane,Doe\n"},
		{"bare quote in header", "First\"Name\nJane\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseOrders(strings.NewReader(tt.csv))
			if !errors.Is(err, ErrParseOrders) {
				t.Fatalf("ParseOrders() error = %v, want %v", err, ErrParseOrders)
			}
			if got != nil {
				t.Errorf("ParseOrders() returned %d partial rows, want none", len(got))
			}
		})
	}
}

func TestReadOrders(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "orders.csv")
	if err := os.WriteFile(path, []byte(ordersHeader+"Jane,Doe,1 Test Ave,,Metropolis,NY,10001,USA\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	orders, err := ReadOrders(path)
	if err != nil {
		t.Fatalf("ReadOrders() unexpected error: %v", err)
	}
	if len(orders) != 1 || orders[0]["FirstName"] != "Jane" {
		t.Errorf("ReadOrders() = %v, want one order for Jane", orders)
	}
}

func TestReadOrders_Missing(t *testing.T) {
	t.Parallel()

	_, err := ReadOrders(filepath.Join(t.TempDir(), "missing.csv"))
	if !errors.Is(err, ErrReadOrders) {
		t.Errorf("ReadOrders() error = %v, want %v", err, ErrReadOrders)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadOrders() error = %v, want fs.ErrNotExist", err)
	}
}

func TestReadOrders_MalformedNamesFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.csv")
	if err := os.WriteFile(path, []byte("a,b\n\"x\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := ReadOrders(path)
	if !errors.Is(err, ErrParseOrders) {
		t.Fatalf("ReadOrders() error = %v, want %v", err, ErrParseOrders)
	}
	if !strings.Contains(err.Error(), "bad.csv") {
		t.Errorf("error %q should name the file", err)
	}
}
