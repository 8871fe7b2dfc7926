/*
   Copyright 2018-2019 Banco Bilbao Vizcaya Argentaria, S.A.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bbva/dmt/build"
	"github.com/bbva/dmt/crypto/hashing"
	"github.com/bbva/dmt/merkle"
)

// execute runs a fresh dmt command with the given arguments, reading
// its settings from the given config file, and returns what it printed.
func execute(t *testing.T, config string, args ...string) (string, error) {
	var buf bytes.Buffer
	root := NewRootCommand()
	root.SetOutput(&buf)
	root.SetArgs(append([]string{"--config", config}, args...))
	_, err := root.ExecuteC()
	return buf.String(), err
}

func rootOf(t *testing.T, hasherID string, values ...string) hashing.Digest {
	hasher, err := hashing.NewTreeHasher(hasherID)
	require.NoError(t, err)
	elements := make([][]byte, len(values))
	for i, v := range values {
		elements[i] = []byte(v)
	}
	tree, err := merkle.NewTree(hasher, elements)
	require.NoError(t, err)
	return tree.Root()
}

var encodedRe = regexp.MustCompile(`Encoded: ([0-9a-f]+)`)

func TestBuildCommand(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)
	config := writeFile(t, dir, "dmt.yaml", "log: silent\n")
	input := writeFile(t, dir, "input.txt", "a\nb\n")

	testCases := []struct {
		args     []string
		expected []string
	}{
		{
			args: []string{"build", "--values", "a,b,c"},
			expected: []string{
				"Hasher: sha256\n",
				"Leaves: 3\n",
				"Depth: 2\n",
				"Root: " + rootOf(t, hashing.SHA256, "a", "b", "c").String() + "\n",
			},
		},
		{
			args: []string{"build", "--values", "a,b,c", "--append", "d"},
			expected: []string{
				"Inserted index 3: root " + rootOf(t, hashing.SHA256, "a", "b", "c", "d").String() + "\n",
				"Leaves: 4\n",
				"Root: " + rootOf(t, hashing.SHA256, "a", "b", "c", "d").String() + "\n",
			},
		},
		{
			args: []string{"build", "--input", input, "--values", "c"},
			expected: []string{
				"Leaves: 3\n",
				"Root: " + rootOf(t, hashing.SHA256, "a", "b", "c").String() + "\n",
			},
		},
		{
			args: []string{"--hasher", "xor", "build", "--values", "x"},
			expected: []string{
				"Hasher: xor\n",
				"Depth: 0\n",
				"Root: 78\n",
			},
		},
	}

	for i, c := range testCases {
		out, err := execute(t, config, c.args...)
		require.NoErrorf(t, err, "Command should not fail in test case %d", i)
		for _, e := range c.expected {
			assert.Containsf(t, out, e, "Output should contain %q in test case %d", e, i)
		}
	}
}

func TestBuildCommandEmptyInput(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)
	config := writeFile(t, dir, "dmt.yaml", "log: silent\n")

	_, err := execute(t, config, "build")
	require.Error(t, err)
	require.Equal(t, merkle.ErrEmptyInput, errors.Cause(err))
}

func TestHasherFromConfigFile(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)
	config := writeFile(t, dir, "dmt.yaml", "hasher: keccak256\n")

	out, err := execute(t, config, "build", "--values", "a,b")
	require.NoError(t, err)
	require.Contains(t, out, "Hasher: keccak256\n")
	require.Contains(t, out, "Root: "+rootOf(t, hashing.KECCAK256, "a", "b").String()+"\n")

	out, err = execute(t, config, "--hasher", "blake2b", "build", "--values", "a,b")
	require.NoError(t, err)
	require.Contains(t, out, "Hasher: blake2b\n", "Flags should take precedence over the config file")
}

func TestUnknownHasher(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)
	config := writeFile(t, dir, "dmt.yaml", "hasher: md5\n")

	_, err := execute(t, config, "build", "--values", "a")
	require.Error(t, err)
	require.Equal(t, hashing.ErrUnknownHasher, errors.Cause(err))
}

func TestMissingConfigFile(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)

	_, err := execute(t, filepath.Join(dir, "missing.yaml"), "build", "--values", "a")
	require.Error(t, err)
}

func TestProveAndVerifyCommands(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)
	config := writeFile(t, dir, "dmt.yaml", "log: silent\n")
	proofPath := filepath.Join(dir, "proof.bin")

	out, err := execute(t, config, "prove", "--values", "a,b,c", "--index", "2", "--out", proofPath)
	require.NoError(t, err)
	require.Contains(t, out, "Proof(index 2, leaves 3, hasher sha256)")

	matches := encodedRe.FindStringSubmatch(out)
	require.Len(t, matches, 2)
	encoded := matches[1]

	root := rootOf(t, hashing.SHA256, "a", "b", "c").String()

	out, err = execute(t, config, "verify", "--value", "c", "--proof", proofPath, "--root", root)
	require.NoError(t, err)
	require.Contains(t, out, "Verify: OK\n")

	out, err = execute(t, config, "verify", "--value", "c", "--proof-hex", encoded, "--root", root)
	require.NoError(t, err)
	require.Contains(t, out, "Verify: OK\n")

	out, err = execute(t, config, "verify", "--value", "x", "--proof", proofPath, "--root", root)
	require.Equal(t, ErrProofNotVerified, errors.Cause(err))
	require.Contains(t, out, "Verify: KO\n")

	// the proof is stale once d is appended
	grown := rootOf(t, hashing.SHA256, "a", "b", "c", "d").String()
	_, err = execute(t, config, "verify", "--value", "c", "--proof", proofPath, "--root", grown)
	require.Equal(t, ErrProofNotVerified, errors.Cause(err))

	_, err = execute(t, config, "--hasher", "blake2b", "verify", "--value", "c", "--proof", proofPath, "--root", root)
	require.Equal(t, ErrHasherMismatch, errors.Cause(err))

	_, err = execute(t, config, "verify", "--value", "c", "--root", root)
	require.Equal(t, ErrMissingProof, errors.Cause(err))

	_, err = execute(t, config, "verify", "--value", "c", "--proof", proofPath, "--root", root[2:])
	require.Equal(t, ErrMalformedDigest, errors.Cause(err))
}

func TestProveCommandOutOfRange(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)
	config := writeFile(t, dir, "dmt.yaml", "log: silent\n")

	_, err := execute(t, config, "prove", "--values", "a,b,c", "--index", "3")
	require.Error(t, err)
	require.Equal(t, merkle.ErrIndexOutOfRange, errors.Cause(err))
}

func TestHashersCommand(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)
	config := writeFile(t, dir, "dmt.yaml", "log: silent\n")

	out, err := execute(t, config, "hashers")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(hashing.Hashers()))
	require.Contains(t, out, "sha256     32 bytes (default)\n")
	require.Contains(t, out, "xor         1 bytes\n")
}

func TestMetricsFlag(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)
	config := writeFile(t, dir, "dmt.yaml", "log: silent\n")

	out, err := execute(t, config, "--metrics", "build", "--values", "a,b,c", "--append", "d")
	require.NoError(t, err)
	require.Contains(t, out, "# TYPE dmt_merkle_build_total counter")
	require.Contains(t, out, "dmt_merkle_leaves 4")

	out, err = execute(t, config, "build", "--values", "a")
	require.NoError(t, err)
	require.NotContains(t, out, "dmt_merkle")
}

func TestVersionCommand(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)
	config := writeFile(t, dir, "dmt.yaml", "log: silent\n")

	out, err := execute(t, config, "version")
	require.NoError(t, err)
	require.Equal(t, build.GetInfo().Short()+"\n", out)
}
