package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	totalEntries = 64000 // Total number of log records to generate
	fileCount    = 40    // Number of <digits>.log files the records are spread across
)

var (
	days       = []string{"2018-05-01", "2018-05-02", "2018-05-03", "2018-05-04"}
	eventTypes = []string{"create", "update", "delete"}
)

// ### End - fixed configs

type entry struct {
	bucket int
	round  int
}

type record struct {
	Timestamp   int64   `json:"timestamp"`
	EventType   string  `json:"event_type"`
	IDs         []int64 `json:"ids"`
	QueryString string  `json:"query_string"`
}

type counters struct {
	Create int64 `json:"create"`
	Delete int64 `json:"delete"`
	Update int64 `json:"update"`
}

type report map[string]map[string]*counters

// main runs the e2e scenario: 001_basic_daily_rollup
//
// This scenario writes a log directory with 64,000 records spread over 40 log files plus a few
// files the reader must ignore, runs the reader binary once per processor count and compares
// every report with the expected one computed while generating the records.
//
// What it tests:
//   - Discovery of <digits>.log files only (other names and sub directories are ignored)
//   - Record validation against the id= parameters of the query string
//   - Daily UTC bucketing and create/update/delete counting per validity class
//   - Malformed lines are skipped without failing the run
//   - The report does not depend on the number of processors
//
// Expected results:
//   - Every run exits 0
//   - Every report equals the computed expectation and all reports are byte-identical
func main() {
	// these configs can be changed to run the scenario
	readerBin := getEnv("READER_BIN", "bin/reader")          // Reader binary path relative to project root
	logDir := getEnv("LOG_DIR", ".tmp/e2e/logs")             // Log directory path relative to project root
	outputDir := getEnv("OUTPUT_DIR", ".tmp/e2e/output")     // Report directory path relative to project root
	processors := getEnvInts("PROCESSORS", []int{1, 3, 8}) // Processor counts to run the reader with
	garbageEvery := getEnvInt("GARBAGE_EVERY", 997)          // Insert a malformed line after every N records, 0 disables

	projectRoot, err := findProjectRoot()
	if err != nil {
		fail("%v", err)
	}
	readerPath := filepath.Join(projectRoot, readerBin)
	logPath := filepath.Join(projectRoot, logDir)
	outputPath := filepath.Join(projectRoot, outputDir)

	fmt.Println("Starting e2e scenario: 001_basic_daily_rollup")
	fmt.Printf("READER_BIN: %s\n", readerPath)
	fmt.Printf("LOG_DIR: %s\n", logPath)
	fmt.Printf("OUTPUT_DIR: %s\n", outputPath)
	fmt.Printf("PROCESSORS: %v\n", processors)
	fmt.Printf("GARBAGE_EVERY: %d\n", garbageEvery)
	fmt.Printf("TOTAL_ENTRIES: %d\n", totalEntries)
	fmt.Printf("FILE_COUNT: %d\n", fileCount)
	fmt.Println()

	for _, dir := range []string{logPath, outputPath} {
		if err := os.RemoveAll(dir); err != nil {
			fail("failed to clean %s: %v", dir, err)
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fail("failed to create %s: %v", dir, err)
		}
	}

	fmt.Printf("Generating %d records into %d files...\n", totalEntries, fileCount)
	expected, err := writeLogDirectory(logPath, garbageEvery)
	if err != nil {
		fail("failed to write log directory: %v", err)
	}
	fmt.Println()

	var first []byte
	for _, p := range processors {
		output := filepath.Join(outputPath, fmt.Sprintf("output-p%d.txt", p))
		started := time.Now()
		cmd := exec.Command(readerPath, "-d", logPath, "-o", output, "-p", strconv.Itoa(p), "--log-level", "warn")
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			fail("reader with -p %d failed: %v", p, err)
		}
		fmt.Printf("Reader with -p %d completed in %s\n", p, time.Since(started).Round(time.Millisecond))

		data, err := os.ReadFile(output)
		if err != nil {
			fail("failed to read %s: %v", output, err)
		}
		var got report
		if err := json.Unmarshal(data, &got); err != nil {
			fail("report %s is not valid JSON: %v", output, err)
		}
		if !reflect.DeepEqual(got, expected) {
			fail("report %s does not match the expected counts", output)
		}
		if first == nil {
			first = data
		} else if !bytes.Equal(first, data) {
			fail("report %s differs from the first report", output)
		}
	}

	fmt.Println()
	fmt.Println("=== Expected totals ===")
	for _, validity := range []string{"valid", "non_valid"} {
		var total counters
		for _, c := range expected[validity] {
			total.Create += c.Create
			total.Update += c.Update
			total.Delete += c.Delete
		}
		fmt.Printf("%s: create=%d update=%d delete=%d days=%d\n", validity, total.Create, total.Update, total.Delete, len(expected[validity]))
	}
	fmt.Println("Scenario completed successfully")
}

// writeLogDirectory writes the records plus decoy files and returns the report they must produce.
func writeLogDirectory(dir string, garbageEvery int) (report, error) {
	expected := report{"valid": {}, "non_valid": {}}

	writers := make([]*bufio.Writer, fileCount)
	files := make([]*os.File, fileCount)
	for i := range fileCount {
		f, err := os.Create(filepath.Join(dir, fmt.Sprintf("%d.log", i+1)))
		if err != nil {
			return nil, err
		}
		files[i] = f
		writers[i] = bufio.NewWriter(f)
	}

	for i, e := range generateAllEntries() {
		rec, valid, err := generateRecord(e)
		if err != nil {
			return nil, err
		}
		line, err := json.Marshal(rec)
		if err != nil {
			return nil, err
		}
		w := writers[i%fileCount]
		w.Write(line)
		w.WriteByte('\n')
		if garbageEvery > 0 && i%garbageEvery == 0 {
			w.WriteString("{not json\n")
		}

		validity := "non_valid"
		if valid {
			validity = "valid"
		}
		day := strconv.FormatInt(rec.Timestamp-rec.Timestamp%86400, 10)
		c, ok := expected[validity][day]
		if !ok {
			c = &counters{}
			expected[validity][day] = c
		}
		switch rec.EventType {
		case "create":
			c.Create++
		case "update":
			c.Update++
		case "delete":
			c.Delete++
		}
	}

	for i := range fileCount {
		if err := writers[i].Flush(); err != nil {
			return nil, err
		}
		if err := files[i].Close(); err != nil {
			return nil, err
		}
	}

	// Decoys: none of these may be read.
	decoy := []byte(`{"timestamp": 1525132800, "event_type": "create", "ids": [1], "query_string": "id=1"}` + "\n")
	for _, name := range []string{"notes.txt", "1.log.bak", "a1.log", ".5.log"} {
		if err := os.WriteFile(filepath.Join(dir, name), decoy, 0o644); err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(filepath.Join(dir, "99.log"), 0o755); err != nil {
		return nil, err
	}
	return expected, nil
}

func generateAllEntries() []entry {
	entries := make([]entry, 0, totalEntries)
	bucket := 0
	round := 0

	for count := 0; count < totalEntries; count++ {
		entries = append(entries, entry{bucket: bucket, round: round})

		bucket++
		if bucket >= 48 {
			bucket = 0
			round++
		}
	}

	return entries
}

// generateRecord maps an entry onto a record: the bucket picks the day, the event type and
// whether the query string names the same ids, the round spreads the seconds across the day.
func generateRecord(e entry) (record, bool, error) {
	dayIndex := e.bucket / 12
	combo := e.bucket % 12
	eventType := eventTypes[combo/4]
	valid := combo%4 != 3

	day, err := time.Parse(time.DateOnly, days[dayIndex])
	if err != nil {
		return record{}, false, err
	}
	seconds := int64((e.round*37 + e.bucket) % 86400)

	ids := []int64{int64(e.round % 100), int64(e.round%100 + 1), int64(e.bucket + 200)}
	query := make([]string, 0, len(ids)+1)
	for i := len(ids) - 1; i >= 0; i-- {
		query = append(query, "id="+strconv.FormatInt(ids[i], 10))
	}
	query = append(query, "page="+strconv.Itoa(e.round%7))
	if !valid {
		query = query[1:]
	}

	return record{
		Timestamp:   day.Unix() + seconds,
		EventType:   eventType,
		IDs:         ids,
		QueryString: strings.Join(query, "&"),
	}, valid, nil
}

// findProjectRoot walks up from the working directory until it finds go.mod.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find go.mod, run from inside the project")
		}
		dir = parent
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "ERROR: "+format+"\n", args...)
	os.Exit(1)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInts(key string, defaultValue []int) []int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var result []int
	for _, part := range strings.Split(value, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return defaultValue
		}
		result = append(result, n)
	}
	return result
}
