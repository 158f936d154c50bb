// Package ingestion extracts plain text from uploaded resume documents.
// Extraction failures are per-file: one unreadable document never aborts a
// batch.
package ingestion

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrUnsupportedFormat indicates a file extension outside the supported set.
type ErrUnsupportedFormat struct {
	Extension string
}

func (e *ErrUnsupportedFormat) Error() string {
	return fmt.Sprintf("unsupported file format %q: only .pdf, .docx and .txt are supported", e.Extension)
}

// ExtractError wraps a per-file extraction failure with the file name.
type ExtractError struct {
	Filename string
	Cause    error
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("failed to extract text from %s: %v", e.Filename, e.Cause)
}

func (e *ExtractError) Unwrap() error {
	return e.Cause
}

// ExtractText extracts plain text from a resume document based on its file
// extension.
func ExtractText(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		text, err := extractPDF(data)
		if err != nil {
			return "", &ExtractError{Filename: filename, Cause: err}
		}
		return text, nil
	case ".docx":
		text, err := extractDOCX(data)
		if err != nil {
			return "", &ExtractError{Filename: filename, Cause: err}
		}
		return text, nil
	case ".txt":
		return string(data), nil
	default:
		return "", &ErrUnsupportedFormat{Extension: filepath.Ext(filename)}
	}
}

// ExtractFile reads a document from disk and extracts its text.
func ExtractFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ExtractError{Filename: filepath.Base(path), Cause: err}
	}
	return ExtractText(filepath.Base(path), data)
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	textReader, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, textReader); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var docXML []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return "", err
			}
			docXML, err = io.ReadAll(rc)
			rc.Close()
			if err != nil {
				return "", err
			}
			break
		}
	}
	if docXML == nil {
		return "", fmt.Errorf("document.xml not found in archive")
	}

	return docxTextFromXML(docXML)
}

// docxTextFromXML walks the document XML and joins paragraph text with
// newlines. A streaming decoder is used because document.xml namespaces
// vary across producers.
func docxTextFromXML(docXML []byte) (string, error) {
	decoder := xml.NewDecoder(bytes.NewReader(docXML))
	var sb strings.Builder
	inText := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			if el.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch el.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				sb.Write(el)
			}
		}
	}
	return sb.String(), nil
}

// SupportedExtensions lists the document formats ExtractText accepts.
func SupportedExtensions() []string {
	return []string{".pdf", ".docx", ".txt"}
}
