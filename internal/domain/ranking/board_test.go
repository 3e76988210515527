package ranking

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/alexdes2202/inf8808-team7-deploy/internal/domain/model"
)

func medalRow(name string, year int, m model.Medal) model.AthleteRecord {
	return model.AthleteRecord{Name: name, Year: year, Sport: "Swimming", Medal: m}
}

func TestBoard_BasicOperations(t *testing.T) {
	records := []model.AthleteRecord{
		medalRow("Spitz", 1972, model.Gold),
		medalRow("Spitz", 1972, model.Gold),
		medalRow("Biondi", 1988, model.Gold),
		medalRow("Biondi", 1988, model.Silver),
		medalRow("Biondi", 1988, model.Bronze),
		medalRow("Nobody", 1988, model.NoMedal),
		medalRow("Thorpe", 2000, model.Silver),
	}
	b := NewBoard(records)

	if b.Len() != 3 {
		t.Fatalf("expected 3 medalled athletes, got %d", b.Len())
	}

	entries, err := b.Top(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Entry{
		{Rank: 1, Name: "Biondi", Gold: 1, Silver: 1, Bronze: 1, Total: 3},
		{Rank: 2, Name: "Spitz", Gold: 2, Total: 2},
		{Rank: 3, Name: "Thorpe", Silver: 1, Total: 1},
	}
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(entries))
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entry %d: expected %+v, got %+v", i, want[i], entries[i])
		}
	}
}

func TestBoard_TiesKeepFirstAppearance(t *testing.T) {
	records := []model.AthleteRecord{
		medalRow("Zed", 2000, model.Bronze),
		medalRow("Amy", 2000, model.Gold),
		medalRow("Max", 2004, model.Gold),
		medalRow("Max", 2004, model.Gold),
		medalRow("Bob", 2008, model.Silver),
	}
	entries, err := NewBoard(records).Top(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	names := make([]string, len(entries))
	ranks := make([]int, len(entries))
	for i, e := range entries {
		names[i] = e.Name
		ranks[i] = e.Rank
	}
	if fmt.Sprint(names) != "[Max Zed Amy Bob]" {
		t.Errorf("expected tie order by first appearance, got %v", names)
	}
	if fmt.Sprint(ranks) != "[1 2 2 2]" {
		t.Errorf("expected dense ranks, got %v", ranks)
	}
}

func TestBoard_TopNStability(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	var records []model.AthleteRecord
	totals := map[string]int{}
	for i := 0; i < 60; i++ {
		name := fmt.Sprintf("athlete-%02d", i)
		n := 1 + rng.Intn(4)
		for j := 0; j < n; j++ {
			records = append(records, medalRow(name, 2000+4*j, model.Medals[rng.Intn(3)]))
		}
		totals[name] = n
	}
	rng.Shuffle(len(records), func(i, j int) { records[i], records[j] = records[j], records[i] })

	b := NewBoard(records)
	top, err := b.Top(DefaultHallOfFameSize)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(top) != DefaultHallOfFameSize {
		t.Fatalf("expected %d entries, got %d", DefaultHallOfFameSize, len(top))
	}

	sums := make([]int, 0, len(totals))
	for _, n := range totals {
		sums = append(sums, n)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sums)))
	for i, e := range top {
		if e.Total != sums[i] {
			t.Errorf("position %d: expected total %d, got %d", i, sums[i], e.Total)
		}
	}

	again, _ := NewBoard(records).Top(DefaultHallOfFameSize)
	for i := range top {
		if top[i] != again[i] {
			t.Errorf("position %d differs between runs: %+v vs %+v", i, top[i], again[i])
		}
	}
}

func TestBoard_FewerThanN(t *testing.T) {
	entries, err := NewBoard([]model.AthleteRecord{medalRow("Solo", 2000, model.Gold)}).Top(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected 1 entry, got %d", len(entries))
	}

	entries, err = NewBoard(nil).Top(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entries == nil || len(entries) != 0 {
		t.Errorf("expected empty non-nil entries, got %#v", entries)
	}
}

func TestBoard_InvalidLimit(t *testing.T) {
	if _, err := NewBoard(nil).Top(0); !errors.Is(err, ErrInvalidLimit) {
		t.Errorf("expected ErrInvalidLimit, got %v", err)
	}
}

func TestBoard_Rank(t *testing.T) {
	records := []model.AthleteRecord{
		medalRow("A", 2000, model.Gold),
		medalRow("A", 2004, model.Gold),
		medalRow("B", 2000, model.Silver),
		medalRow("C", 2000, model.Bronze),
		medalRow("D", 2000, model.NoMedal),
	}
	b := NewBoard(records)

	s, err := b.Rank("C")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Rank != 2 || s.Position != 3 || s.Of != 3 || s.Bronze != 1 {
		t.Errorf("unexpected standing %+v", s)
	}

	s, err = b.Rank("A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Rank != 1 || s.Position != 1 || s.Total != 2 {
		t.Errorf("unexpected standing %+v", s)
	}

	if _, err := b.Rank("D"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for an athlete without medals, got %v", err)
	}
	if _, err := b.Rank("Nobody"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestTreap_PositionMatchesInOrder(t *testing.T) {
	var root *node
	for i := 0; i < 200; i++ {
		root = insert(root, fmt.Sprintf("n%03d", i), i%7, i)
	}
	var nodes []*node
	collect(root, 1000, &nodes)
	if len(nodes) != 200 || nsize(root) != 200 {
		t.Fatalf("expected 200 nodes, got %d (size %d)", len(nodes), nsize(root))
	}
	for i, n := range nodes {
		if i > 0 && !less(nodes[i-1].total, nodes[i-1].first, n.total, n.first) {
			t.Fatalf("in-order traversal out of order at %d", i)
		}
		if p := position(root, n.total, n.first); p != i+1 {
			t.Errorf("node %s: expected position %d, got %d", n.name, i+1, p)
		}
	}
	if position(root, 99, 99) != 0 {
		t.Error("expected 0 for a missing key")
	}
}

func TestTopAthletes(t *testing.T) {
	records := []model.AthleteRecord{
		medalRow("A", 2000, model.Gold),
		medalRow("A", 2004, model.Silver),
		medalRow("B", 2000, model.Bronze),
		medalRow("C", 2000, model.Bronze),
	}
	hof, err := TopAthletes(records, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hof.Entries) != 2 || hof.Entries[0].Name != "A" || hof.Entries[1].Name != "B" {
		t.Fatalf("unexpected entries %+v", hof.Entries)
	}
	for _, r := range hof.Rows {
		if r.Name == "C" {
			t.Errorf("rows should only cover athletes on the board, got %+v", r)
		}
	}
	if len(hof.Rows) != 3 {
		t.Errorf("expected 3 rows, got %d", len(hof.Rows))
	}
}
