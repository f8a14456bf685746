package generator

// FieldNames lists the record fields in their fixed output order.
// Every exporter emits fields in exactly this order.
var FieldNames = []string{
	"Full Name",
	"Address",
	"Phone Number",
	"Email Address",
	"Customer Feedback",
}

// Record is one synthetic customer response. Records are immutable once
// generated; they carry no identity beyond their position in the batch.
type Record struct {
	FullName     string
	Address      string
	PhoneNumber  string
	EmailAddress string
	Feedback     string
}

// Values returns the field values in FieldNames order.
func (r Record) Values() []string {
	return []string{r.FullName, r.Address, r.PhoneNumber, r.EmailAddress, r.Feedback}
}

// Lines returns the "Label: value" lines used by the block-oriented
// exporters (Word, PDF, text), in FieldNames order.
func (r Record) Lines() []string {
	values := r.Values()
	lines := make([]string, len(values))
	for i, name := range FieldNames {
		lines[i] = name + ": " + values[i]
	}
	return lines
}

// Batch is the full in-memory record set for one run. It is generated once
// and shared read-only across all exporters.
type Batch []Record
