package tcglabels

// noneValue is how some exports spell an empty optional column.
const noneValue = "None"

// Record is what the renderer receives for one label: the shared return
// address and the recipient's address lines, both markup-safe.
type Record struct {
	ReturnAddress  string
	SendingAddress []string
}

// FormatAddress turns an order into its four address lines, in order:
// name, street, city/state/postal code, country.
//
// Address2 is appended to the street line unless it is absent or the literal
// "None". An empty Address2 still adds the separating space.
// Missing required columns format as empty text.
func FormatAddress(o Order) []string {
	street := FormatMarkup(o[ColAddress1])
	if addr2, ok := o.Value(ColAddress2); ok && addr2 != noneValue {
		street += FormatMarkup(" " + addr2)
	}

	return []string{
		FormatMarkup(o[ColFirstName] + " " + o[ColLastName] + "\n"),
		street,
		FormatMarkup(o[ColCity] + ", " + o[ColState] + " " + o[ColPostalCode] + "\n"),
		FormatMarkup(o[ColCountry]),
	}
}

// BuildRecords pairs returnAddress with every order's formatted address,
// one record per order, in order.
func BuildRecords(returnAddress string, orders []Order) []Record {
	records := make([]Record, len(orders))
	for i, o := range orders {
		records[i] = Record{
			ReturnAddress:  returnAddress,
			SendingAddress: FormatAddress(o),
		}
	}
	return records
}
