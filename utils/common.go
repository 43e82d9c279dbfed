// Common package contains helpers shared by the fold tools:
// residue alphabet checks, deterministic sequence scrambling for the
// ablation control, and a small FASTA reader for sequence input.
package common

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
)

// The 20 standard 1-letter amino acid codes (excluding B, J, O, U, X, Z)
var validAminoAcids = map[byte]bool{
	'A': true, 'C': true, 'D': true, 'E': true, 'F': true,
	'G': true, 'H': true, 'I': true, 'K': true, 'L': true,
	'M': true, 'N': true, 'P': true, 'Q': true, 'R': true,
	'S': true, 'T': true, 'V': true, 'W': true, 'Y': true,
}

// Three-letter residue names for PDB records
var threeLetter = map[byte]string{
	'A': "ALA", 'C': "CYS", 'D': "ASP", 'E': "GLU", 'F': "PHE",
	'G': "GLY", 'H': "HIS", 'I': "ILE", 'K': "LYS", 'L': "LEU",
	'M': "MET", 'N': "ASN", 'P': "PRO", 'Q': "GLN", 'R': "ARG",
	'S': "SER", 'T': "THR", 'V': "VAL", 'W': "TRP", 'Y': "TYR",
}

// ValidateSequence checks every symbol against the standard amino acid
// alphabet and reports the first offender with its position.
func ValidateSequence(seq string) error {
	if len(seq) == 0 {
		return fmt.Errorf("empty sequence")
	}
	for i := 0; i < len(seq); i++ {
		if !validAminoAcids[seq[i]] {
			return fmt.Errorf("invalid amino acid %q at position %d", seq[i], i)
		}
	}
	return nil
}

// ThreeLetterCode returns the PDB residue name for a 1-letter code,
// or "UNK" for anything outside the standard alphabet.
func ThreeLetterCode(aa byte) string {
	if name, ok := threeLetter[aa]; ok {
		return name
	}
	return "UNK"
}

// Scramble returns a random permutation of seq drawn from a source
// seeded with seed. The same seed always yields the same permutation,
// which keeps the scrambled ablation control reproducible.
func Scramble(seq string, seed int64) string {
	r := rand.New(rand.NewSource(seed))
	b := []byte(seq)
	r.Shuffle(len(b), func(i, j int) { b[i], b[j] = b[j], b[i] })
	return string(b)
}

// ReadFirstFasta returns the ID and sequence of the first record in a
// FASTA file. Gzipped input is detected by magic bytes and
// decompressed transparently; sequence lines are uppercased.
func ReadFirstFasta(file string) (string, string, error) {
	f, err := os.Open(file)
	if err != nil {
		return "", "", fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	var reader io.Reader = f
	buf := make([]byte, 2)
	if _, err := f.Read(buf); err == nil && buf[0] == 0x1F && buf[1] == 0x8B {
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return "", "", err
		}
		gr, err := gzip.NewReader(f)
		if err != nil {
			return "", "", fmt.Errorf("failed to open gzip reader: %w", err)
		}
		defer gr.Close()
		reader = gr
	} else {
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return "", "", err
		}
	}

	scanner := bufio.NewScanner(reader)
	var id string
	var seq strings.Builder
	seen := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			if seen {
				break // only the first record is wanted
			}
			id = strings.TrimPrefix(line, ">")
			seen = true
			continue
		}
		if !seen {
			return "", "", fmt.Errorf("sequence data before FASTA header in %s", file)
		}
		seq.WriteString(strings.ToUpper(line))
	}
	if err := scanner.Err(); err != nil {
		return "", "", fmt.Errorf("scanner error: %w", err)
	}
	if !seen || seq.Len() == 0 {
		return "", "", fmt.Errorf("no FASTA record found in %s", file)
	}
	return id, seq.String(), nil
}
