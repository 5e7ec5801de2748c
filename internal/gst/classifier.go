package gst

import "strings"

// IsInterState reports whether a supply attracts IGST rather than CGST+SGST.
// An empty customerGSTIN means the customer is unregistered. The function
// never fails: when the answer cannot be determined it returns false.
func IsInterState(supplierGSTIN, customerGSTIN string, customerType CustomerType) bool {
	if customerType == CustomerExport {
		return true
	}
	customerGSTIN = strings.TrimSpace(customerGSTIN)
	if customerGSTIN == "" {
		return false
	}
	supplierGSTIN = strings.TrimSpace(supplierGSTIN)
	if len(supplierGSTIN) < 2 || len(customerGSTIN) < 2 {
		return false
	}
	return !strings.EqualFold(supplierGSTIN[:2], customerGSTIN[:2])
}
