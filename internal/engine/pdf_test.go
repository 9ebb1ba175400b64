package engine

import (
	"bytes"
	"testing"
)

// ---------------------------------------------------------------------------
// TestPDFEncoder - Output structure
// ---------------------------------------------------------------------------

func TestPDFEncoder_EncodePDF(t *testing.T) {
	t.Parallel()

	doc := specimenDoc(t)
	doc.Title = "Specimen"
	doc.Author = "fontcompare"

	var e PDFEncoder
	out, err := e.EncodePDF(doc)
	if err != nil {
		t.Fatalf("EncodePDF() error: %v", err)
	}

	if !bytes.HasPrefix(out, []byte("%PDF-1.5\n")) {
		t.Errorf("output does not start with a PDF header: %q", out[:16])
	}
	if !bytes.HasSuffix(out, []byte("%%EOF\n")) {
		t.Errorf("output does not end with %%%%EOF")
	}

	for _, want := range []string{
		"/Type /Catalog",
		"/Count 2",
		"/MediaBox [0 0 100.00 50.00]",
		"/MediaBox [0 0 80.00 40.00]",
		"/Filter /DCTDecode",
		"/Title (Specimen)",
		"/Author (fontcompare)",
		"/Outlines",
		"/Title (Alpha)",
		"startxref",
	} {
		if !bytes.Contains(out, []byte(want)) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestPDFEncoder_NoOutline(t *testing.T) {
	t.Parallel()

	doc := specimenDoc(t)
	doc.Outline = nil

	var e PDFEncoder
	out, err := e.EncodePDF(doc)
	if err != nil {
		t.Fatalf("EncodePDF() error: %v", err)
	}
	if bytes.Contains(out, []byte("/Outlines")) {
		t.Error("outline-free document still declares /Outlines")
	}
}

func TestPDFEncoder_RejectsForeignDocument(t *testing.T) {
	t.Parallel()

	var e PDFEncoder
	if _, err := e.EncodePDF(42); err == nil {
		t.Error("EncodePDF() accepted a foreign document type")
	}
	if _, err := e.EncodePDF(&Doc{}); err == nil {
		t.Error("EncodePDF() accepted an empty document")
	}
}

func TestEscapePDFString(t *testing.T) {
	t.Parallel()

	if got := escapePDFString(`a(b)c\d`); got != `a\(b\)c\\d` {
		t.Errorf("escapePDFString() = %q", got)
	}
}

// ---------------------------------------------------------------------------
// TestEngine - Toolchain wiring
// ---------------------------------------------------------------------------

func TestEngine_Toolchain(t *testing.T) {
	t.Parallel()

	tc := New().Toolchain()
	if tc.Compiler == nil || tc.Renderer == nil || tc.PDF == nil || tc.Cache == nil {
		t.Errorf("toolchain has nil collaborators: %+v", tc)
	}
}
