package seed

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Record fila del archivo plano, ya tipada. Las partes de factura y transacción
// son opcionales: una fila sin invoice_number solo registra el cliente y una
// sin transaction_id solo registra cliente y factura.
type Record struct {
	Line int

	TransactionID       string
	TransactionDateTime time.Time
	TransactionAmount   decimal.Decimal
	TransactionStatus   string
	TransactionType     string

	CustomerName         string
	IdentificationNumber string
	Address              *string
	Phone                *string
	Email                *string

	Platform string

	InvoiceNumber string
	BillingPeriod string
	AmountBilled  decimal.Decimal
	AmountPaid    decimal.Decimal
}

// HasInvoice indica si la fila trae factura.
func (r Record) HasInvoice() bool { return r.InvoiceNumber != "" }

// HasTransaction indica si la fila trae transacción.
func (r Record) HasTransaction() bool { return r.TransactionID != "" }

var requiredColumns = []string{"customer_name", "identification_number"}

var dateLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
}

// DecodingReader envuelve r para convertir a UTF-8 desde la codificación indicada.
func DecodingReader(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", "utf-8", "utf8":
		return r, nil
	case "latin1", "iso-8859-1", "iso8859-1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	case "windows-1252", "cp1252":
		return transform.NewReader(r, charmap.Windows1252.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("codificación no soportada: %q", encoding)
	}
}

// ParseCSV lee el archivo con encabezado. Acepta coma o punto y coma como separador
// y un BOM UTF-8 al inicio.
func ParseCSV(r io.Reader) ([]Record, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("leer csv: %w", err)
	}
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))

	cr := csv.NewReader(bytes.NewReader(raw))
	cr.Comma = detectComma(raw)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("csv vacío")
	}
	if err != nil {
		return nil, fmt.Errorf("leer encabezado: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, c := range requiredColumns {
		if _, ok := idx[c]; !ok {
			return nil, fmt.Errorf("falta la columna %q", c)
		}
	}

	var out []Record
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("leer csv: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if isBlank(fields) {
			continue
		}
		rec, err := parseRecord(line, fieldGetter(idx, fields))
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func parseRecord(line int, get func(string) string) (Record, error) {
	rec := Record{
		Line:                 line,
		TransactionID:        get("transaction_id"),
		TransactionStatus:    get("transaction_status"),
		TransactionType:      get("transaction_type"),
		CustomerName:         get("customer_name"),
		IdentificationNumber: get("identification_number"),
		Address:              optional(get("address")),
		Phone:                optional(get("phone")),
		Email:                optional(get("email")),
		Platform:             get("platform"),
		InvoiceNumber:        get("invoice_number"),
		BillingPeriod:        get("billing_period"),
	}
	if rec.CustomerName == "" || rec.IdentificationNumber == "" {
		return rec, errors.New("customer_name e identification_number son obligatorios")
	}

	var err error
	if rec.HasInvoice() {
		if rec.AmountBilled, err = parseAmount(get("amount_billed")); err != nil {
			return rec, fmt.Errorf("amount_billed: %w", err)
		}
	}
	if rec.HasTransaction() {
		if !rec.HasInvoice() {
			return rec, errors.New("la transacción no tiene invoice_number")
		}
		if rec.Platform == "" {
			return rec, errors.New("la transacción no tiene platform")
		}
		if rec.TransactionDateTime, err = parseDateTime(get("transaction_datetime")); err != nil {
			return rec, fmt.Errorf("transaction_datetime: %w", err)
		}
		if rec.TransactionAmount, err = parseAmount(get("transaction_amount")); err != nil {
			return rec, fmt.Errorf("transaction_amount: %w", err)
		}
		if rec.AmountPaid, err = parseAmount(get("amount_paid")); err != nil {
			return rec, fmt.Errorf("amount_paid: %w", err)
		}
	}
	return rec, nil
}

func fieldGetter(idx map[string]int, fields []string) func(string) string {
	return func(col string) string {
		i, ok := idx[col]
		if !ok || i >= len(fields) {
			return ""
		}
		return strings.TrimSpace(fields[i])
	}
}

// parseAmount vacío = 0; acepta coma decimal ("1500,50").
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	if s == "" {
		return decimal.Zero, nil
	}
	comma, dot := strings.LastIndex(s, ","), strings.LastIndex(s, ".")
	switch {
	case comma >= 0 && dot >= 0:
		// Con ambos separadores, el último es el decimal.
		if comma > dot {
			s = strings.Replace(strings.ReplaceAll(s, ".", ""), ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case comma >= 0:
		s = singleSeparator(s, ",")
	case dot >= 0:
		s = singleSeparator(s, ".")
	}
	return decimal.NewFromString(s)
}

// singleSeparator trata sep como separador de miles si se repite o si le siguen
// exactamente tres dígitos (los montos llevan a lo sumo dos decimales); si no, es el decimal.
func singleSeparator(s, sep string) string {
	if strings.Count(s, sep) > 1 || len(s)-strings.LastIndex(s, sep)-1 == 3 {
		return strings.ReplaceAll(s, sep, "")
	}
	return strings.Replace(s, sep, ".", 1)
}

func parseDateTime(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("fecha inválida %q", s)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func detectComma(raw []byte) rune {
	first := raw
	if i := bytes.IndexByte(raw, '\n'); i >= 0 {
		first = raw[:i]
	}
	if bytes.Count(first, []byte(";")) > bytes.Count(first, []byte(",")) {
		return ';'
	}
	return ','
}

func isBlank(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
