package ui

import (
	"bytes"
	"encoding/binary"
	"image"
)

// EncodeICO builds an ICO file holding one 32bpp BMP entry per image.
// Images must be square and at most 256 pixels wide.
func EncodeICO(images []*image.NRGBA) []byte {
	entries := make([][]byte, len(images))
	for i, img := range images {
		entries[i] = encodeDIB(img)
	}

	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, uint16(0))           // reserved
	binary.Write(&buf, binary.LittleEndian, uint16(1))           // type: icon
	binary.Write(&buf, binary.LittleEndian, uint16(len(images))) // count

	offset := 6 + 16*len(images)
	for i, img := range images {
		size := img.Bounds().Dx()
		dim := byte(size)
		if size >= 256 {
			dim = 0 // 0 means 256
		}
		buf.WriteByte(dim)
		buf.WriteByte(dim)
		buf.WriteByte(0)                                    // palette
		buf.WriteByte(0)                                    // reserved
		binary.Write(&buf, binary.LittleEndian, uint16(1))  // planes
		binary.Write(&buf, binary.LittleEndian, uint16(32)) // bpp
		binary.Write(&buf, binary.LittleEndian, uint32(len(entries[i])))
		binary.Write(&buf, binary.LittleEndian, uint32(offset))
		offset += len(entries[i])
	}
	for _, e := range entries {
		buf.Write(e)
	}
	return buf.Bytes()
}

// encodeDIB writes a BITMAPINFOHEADER, bottom-up BGRA pixels and an empty
// AND mask.
func encodeDIB(img *image.NRGBA) []byte {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	pixelBytes := w * h * 4
	maskRow := ((w + 31) / 32) * 4

	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, uint32(40))
	binary.Write(&buf, binary.LittleEndian, int32(w))
	binary.Write(&buf, binary.LittleEndian, int32(h*2)) // XOR + AND masks
	binary.Write(&buf, binary.LittleEndian, uint16(1))
	binary.Write(&buf, binary.LittleEndian, uint16(32))
	binary.Write(&buf, binary.LittleEndian, uint32(0))
	binary.Write(&buf, binary.LittleEndian, uint32(pixelBytes))
	binary.Write(&buf, binary.LittleEndian, [4]uint32{})

	for y := b.Max.Y - 1; y >= b.Min.Y; y-- {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.NRGBAAt(x, y)
			buf.Write([]byte{c.B, c.G, c.R, c.A})
		}
	}
	buf.Write(make([]byte, maskRow*h))
	return buf.Bytes()
}
