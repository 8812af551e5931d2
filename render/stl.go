package render

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/chewxy/math32"
)

// binary STL layout: 80 byte header, uint32 triangle count, then 50
// bytes per triangle (normal, 3 vertices, attribute count).
const (
	stlHeaderSize   = 84
	stlTriangleSize = 50
)

// stlHeader defines the STL file header.
type stlHeader struct {
	_     [80]uint8
	Count uint32
}

// WriteSTL writes model triangles to w in binary STL format.
func WriteSTL(w io.Writer, model []Triangle) error {
	if len(model) == 0 {
		return errors.New("empty triangle slice")
	}
	header := stlHeader{Count: uint32(len(model))}
	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return err
	}
	var b [stlTriangleSize]byte
	for _, t := range model {
		stlFromTriangle(t).put(b[:])
		if _, err := io.Copy(w, bytes.NewReader(b[:])); err != nil {
			return err
		}
	}
	return nil
}

// CreateSTL renders the contents of a Renderer to a binary STL file.
// The triangle count is not known up front so the header is patched in
// once the stream is drained.
func CreateSTL(path string, r Renderer) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	if _, err := file.Seek(stlHeaderSize, 0); err != nil {
		return err
	}
	var (
		buf   [256]Triangle
		b     [256 * stlTriangleSize]byte
		count uint32
		nt    int
	)
	for err == nil {
		nt, err = r.ReadTriangles(buf[:])
		for i, t := range buf[:nt] {
			stlFromTriangle(t).put(b[i*stlTriangleSize:])
		}
		if _, werr := file.Write(b[:nt*stlTriangleSize]); werr != nil {
			return werr
		}
		count += uint32(nt)
	}
	if err != io.EOF {
		return err
	}
	if _, err := file.Seek(0, 0); err != nil {
		return err
	}
	return binary.Write(file, binary.LittleEndian, &stlHeader{Count: count})
}

// readBinarySTL parses a binary STL stream. Used to verify written
// geometry in tests.
func readBinarySTL(r io.Reader) ([]Triangle, error) {
	var header stlHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, errors.New("encountered EOF while reading STL header")
		}
		return nil, errors.New("STL header read failed: " + err.Error())
	}
	if header.Count == 0 {
		return nil, errors.New("STL header indicates 0 triangles present")
	}
	var (
		buf    [stlTriangleSize]byte
		d      stlTriangle
		output = make([]Triangle, 0, header.Count)
	)
	for i := 0; i < int(header.Count); i++ {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, fmt.Errorf("%d/%d STL triangles read: %w", i, header.Count, err)
		}
		d.get(buf[:])
		if err := d.validate(); err != nil {
			return nil, fmt.Errorf("triangle %d: %w", i, err)
		}
		output = append(output, d.toTriangle())
	}
	return output, nil
}

// stlTriangle is the on-disk triangle layout within an STL file.
type stlTriangle struct {
	Normal  [3]float32
	Vertex1 [3]float32
	Vertex2 [3]float32
	Vertex3 [3]float32
	_       uint16 // attribute byte count
}

func stlFromTriangle(t Triangle) stlTriangle {
	var d stlTriangle
	n := t.Normal()
	d.Normal = [3]float32{float32(n.X), float32(n.Y), float32(n.Z)}
	for i, f := range [3]*[3]float32{&d.Vertex1, &d.Vertex2, &d.Vertex3} {
		f[0] = float32(t.V[i].X)
		f[1] = float32(t.V[i].Y)
		f[2] = float32(t.V[i].Z)
	}
	return d
}

func (d stlTriangle) toTriangle() (t Triangle) {
	for i, f := range [3][3]float32{d.Vertex1, d.Vertex2, d.Vertex3} {
		t.V[i].X = float64(f[0])
		t.V[i].Y = float64(f[1])
		t.V[i].Z = float64(f[2])
	}
	return t
}

func (d stlTriangle) put(b []byte) {
	if len(b) < stlTriangleSize {
		panic("need length 50 to marshal stlTriangle")
	}
	put3F32(b, d.Normal)
	put3F32(b[12:], d.Vertex1)
	put3F32(b[24:], d.Vertex2)
	put3F32(b[36:], d.Vertex3)
	binary.LittleEndian.PutUint16(b[48:], 0)
}

func (d *stlTriangle) get(b []byte) {
	if len(b) < stlTriangleSize {
		panic("need length 50 to unmarshal stlTriangle")
	}
	get3F32(b, &d.Normal)
	get3F32(b[12:], &d.Vertex1)
	get3F32(b[24:], &d.Vertex2)
	get3F32(b[36:], &d.Vertex3)
}

func (d stlTriangle) validate() error {
	if bad3F32(d.Normal) {
		return errors.New("inf/NaN STL triangle normal")
	}
	if bad3F32(d.Vertex1) || bad3F32(d.Vertex2) || bad3F32(d.Vertex3) {
		return errors.New("inf/NaN STL triangle vertex")
	}
	return nil
}

func put3F32(b []byte, f [3]float32) {
	_ = b[11] // early bounds check
	binary.LittleEndian.PutUint32(b, math.Float32bits(f[0]))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(f[1]))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(f[2]))
}

func get3F32(b []byte, f *[3]float32) {
	_ = b[11] // early bounds check
	f[0] = math.Float32frombits(binary.LittleEndian.Uint32(b))
	f[1] = math.Float32frombits(binary.LittleEndian.Uint32(b[4:]))
	f[2] = math.Float32frombits(binary.LittleEndian.Uint32(b[8:]))
}

func bad3F32(f [3]float32) bool {
	return math32.IsNaN(f[0]) || math32.IsInf(f[0], 0) ||
		math32.IsNaN(f[1]) || math32.IsInf(f[1], 0) ||
		math32.IsNaN(f[2]) || math32.IsInf(f[2], 0)
}
