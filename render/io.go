package render

import "io"

// RenderAll drains a Renderer and returns every triangle read. It does
// not return an error on io.EOF.
func RenderAll(r Renderer) ([]Triangle, error) {
	var err error
	var nt int
	result := make([]Triangle, 0, 1<<12)
	buf := make([]Triangle, 1024)
	for {
		nt, err = r.ReadTriangles(buf)
		result = append(result, buf[:nt]...)
		if err != nil {
			break
		}
	}
	if err == io.EOF {
		return result, nil
	}
	return result, err
}
