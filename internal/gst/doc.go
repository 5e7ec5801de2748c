// Package gst is the Indian GST computation and validation core.
//
// It classifies supplies as intra- or inter-state, splits tax into
// CGST/SGST or IGST plus cess, aggregates line items into invoice totals,
// validates GSTINs and HSN/SAC codes, expands invoice number templates and
// renders amounts in Indian notation and in words.
//
// Every function is pure: no I/O, no package state written after init,
// safe for concurrent use. Monetary arithmetic runs on shopspring/decimal
// and is rounded half away from zero.
//
// GenerateInvoiceNumber does not track the last issued number. Callers that
// persist invoices must run "read last number, compute next, store" as one
// serialised unit (a transaction holding a lock), otherwise two concurrent
// invoices can receive the same number.
package gst
