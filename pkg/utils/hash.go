package utils

import (
	"crypto/md5"
	"encoding/hex"
	"io"
	"os"
)

// PartialHashBlock is the number of bytes read from the head and tail
// of a file for PartialHash.
const PartialHashBlock = 4096

// PartialHash computes a fast content fingerprint from the first 4 KB
// of a file plus, for files larger than 8 KB, the last 4 KB. Files at
// or below 8 KB are hashed in full.
//
// MD5 is used as a fast digest, not for adversarial collision
// resistance: two distinct files of equal size sharing identical
// head/tail windows will collide. Callers treat the result as a
// duplicate pre-filter, always combined with an exact size match.
func PartialHash(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return "", err
	}

	hash := md5.New()

	if info.Size() <= PartialHashBlock*2 {
		if _, err := io.Copy(hash, file); err != nil {
			return "", err
		}
		return hex.EncodeToString(hash.Sum(nil)), nil
	}

	head := make([]byte, PartialHashBlock)
	if _, err := io.ReadFull(file, head); err != nil {
		return "", err
	}
	hash.Write(head)

	if _, err := file.Seek(-PartialHashBlock, io.SeekEnd); err != nil {
		return "", err
	}
	tail := make([]byte, PartialHashBlock)
	if _, err := io.ReadFull(file, tail); err != nil {
		return "", err
	}
	hash.Write(tail)

	return hex.EncodeToString(hash.Sum(nil)), nil
}
