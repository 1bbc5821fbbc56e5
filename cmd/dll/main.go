// Package main provides C-compatible exports for the mimemap library.
// Build with: go build -buildmode=c-shared -o mimemap.dll
package main

/*
#include <stdlib.h>
#include <stdint.h>

// Result structure for operations that return data
typedef struct {
    char* data;
    int   data_len;
    char* error;
} MimeResult;
*/
import "C"

import (
	"encoding/json"
	"unsafe"

	"github.com/logicossoftware/go-mimemap"
	"github.com/logicossoftware/go-mimemap/archive"
	"github.com/logicossoftware/go-mimemap/internal/jsonmap"
	"github.com/logicossoftware/go-mimemap/scene"
)

func main() {}

// MimeVersion returns the map format version supported by this library.
//
//export MimeVersion
func MimeVersion() C.uint32_t {
	return C.uint32_t(mimemap.VersionV1)
}

// MimeFreeResult frees memory allocated by other Mime functions.
// Must be called to avoid memory leaks.
//
//export MimeFreeResult
func MimeFreeResult(result C.MimeResult) {
	if result.data != nil {
		C.free(unsafe.Pointer(result.data))
	}
	if result.error != nil {
		C.free(unsafe.Pointer(result.error))
	}
}

// MimeFreeString frees a C string allocated by Go.
//
//export MimeFreeString
func MimeFreeString(s *C.char) {
	if s != nil {
		C.free(unsafe.Pointer(s))
	}
}

func makeResult(data []byte) C.MimeResult {
	var result C.MimeResult
	if len(data) > 0 {
		result.data = (*C.char)(C.CBytes(data))
		result.data_len = C.int(len(data))
	}
	return result
}

func makeError(err error) C.MimeResult {
	var result C.MimeResult
	result.error = C.CString(err.Error())
	return result
}

func goBytes(data *C.char, dataLen C.int) []byte {
	return C.GoBytes(unsafe.Pointer(data), dataLen)
}

// MimeEncodeScene builds a map from a YAML scene and encodes it.
// Parameters:
//   - yamlData: the scene document
//   - yamlLen: length of the scene document
//   - compression: 0 for a bare map, otherwise the envelope compression
//     (1=ZIP, 2=ZSTD, 3=LZ4, 4=Brotli)
//
// Returns MimeResult with encoded data or error. Call MimeFreeResult when done.
//
//export MimeEncodeScene
func MimeEncodeScene(yamlData *C.char, yamlLen C.int, compression C.uint16_t) C.MimeResult {
	s, err := scene.Parse(goBytes(yamlData, yamlLen))
	if err != nil {
		return makeError(err)
	}
	m, err := s.Build()
	if err != nil {
		return makeError(err)
	}
	b, err := mimemap.Encode(m, mimemap.WithValidationOnWrite(true))
	if err != nil {
		return makeError(err)
	}
	if comp := archive.Compression(compression); comp != archive.CompNone {
		b, err = archive.Pack(b, comp)
		if err != nil {
			return makeError(err)
		}
	}
	return makeResult(b)
}

// MimeDecode decodes a map, bare or enveloped, and returns it as JSON.
// The JSON structure is {"version": n, "sectors": [{floor, ceiling, wall}]}
// where each mesh holds "vertices" as [x,y,z,r,g,b,a] arrays and "indices".
// Non-finite floats are written as the strings "NaN", "+Inf" and "-Inf".
//
// Returns MimeResult with JSON string or error. Call MimeFreeResult when done.
//
//export MimeDecode
func MimeDecode(data *C.char, dataLen C.int) C.MimeResult {
	m, err := archive.Open(goBytes(data, dataLen))
	if err != nil {
		return makeError(err)
	}
	jsonBytes, err := json.Marshal(jsonmap.FromMap(m))
	if err != nil {
		return makeError(err)
	}
	return makeResult(jsonBytes)
}

// MimeDecodeSector decodes only sector index of a bare map and returns it as
// JSON in the same shape MimeDecode uses for each sector, including the
// string form of non-finite floats.
//
//export MimeDecodeSector
func MimeDecodeSector(data *C.char, dataLen C.int, index C.int) C.MimeResult {
	s, err := mimemap.DecodeSectorAt(goBytes(data, dataLen), int(index))
	if err != nil {
		return makeError(err)
	}
	jsonBytes, err := json.Marshal(jsonmap.FromSector(s))
	if err != nil {
		return makeError(err)
	}
	return makeResult(jsonBytes)
}

// MimeValidate decodes a map and checks its indices and floats.
// Returns NULL on success, or an error message string on failure.
// Call MimeFreeString on the result if non-NULL.
//
//export MimeValidate
func MimeValidate(data *C.char, dataLen C.int) *C.char {
	opts := archive.WithMapOptions(mimemap.WithValidation(true))
	if _, err := archive.Open(goBytes(data, dataLen), opts); err != nil {
		return C.CString(err.Error())
	}
	return nil
}

// MimeGetSectorCount returns the number of sectors in a bare map without
// decoding any mesh. Returns -1 on error.
//
//export MimeGetSectorCount
func MimeGetSectorCount(data *C.char, dataLen C.int) C.int {
	_, blocks, err := mimemap.Scan(goBytes(data, dataLen))
	if err != nil {
		return -1
	}
	return C.int(len(blocks))
}

// MimeUnpack returns the bare map held by a compressed envelope.
//
//export MimeUnpack
func MimeUnpack(data *C.char, dataLen C.int) C.MimeResult {
	b, err := archive.Unpack(goBytes(data, dataLen))
	if err != nil {
		return makeError(err)
	}
	return makeResult(b)
}
