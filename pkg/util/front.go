package util

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mihai-snyk/moea/pkg/framework"
)

// WriteFront writes one point per line, objectives separated by a space.
func WriteFront(w io.Writer, points []framework.ObjectiveSpacePoint) error {
	bw := bufio.NewWriter(w)
	for _, p := range points {
		for i, v := range p {
			if i > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return err
				}
			}
			if _, err := bw.WriteString(strconv.FormatFloat(v, 'g', -1, 64)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadFront parses the format written by WriteFront. Blank lines and lines
// starting with '#' are skipped; every point must have the same dimension.
func ReadFront(r io.Reader) ([]framework.ObjectiveSpacePoint, error) {
	var points []framework.ObjectiveSpacePoint
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		p := make(framework.ObjectiveSpacePoint, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			p[i] = v
		}
		if len(points) > 0 && len(p) != len(points[0]) {
			return nil, fmt.Errorf("line %d: %d values, expected %d", line, len(p), len(points[0]))
		}
		points = append(points, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return points, nil
}

// WriteFrontFile writes the front to path, replacing any existing file.
func WriteFrontFile(path string, points []framework.ObjectiveSpacePoint) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteFront(f, points); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadFrontFile reads a front written by WriteFrontFile.
func ReadFrontFile(path string) ([]framework.ObjectiveSpacePoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadFront(f)
}
