package main

import (
	_ "embed"
	"fmt"
	"log"

	"github.com/pborges/aoc2023/2023/day05/almanac"
)

//go:embed sample.txt
var sample string

//go:embed input.txt
var input string

func part1(a almanac.Almanac) uint64 {
	return a.LowestLocation()
}

// part2 walks the seed ranges through the maps and checks the answer against
// the flattened map.
func part2(a almanac.Almanac) (uint64, error) {
	ranges, err := a.SeedRanges()
	if err != nil {
		return 0, err
	}
	walked, ok := a.LowestLocationOfRanges(ranges)
	if !ok {
		return 0, fmt.Errorf("no seeds in %d seed ranges", len(ranges))
	}
	composed, ok := a.LowestLocationComposed(ranges)
	if !ok || composed != walked {
		return 0, fmt.Errorf("range walk found %d but flattened map found %d", walked, composed)
	}
	return walked, nil
}

func solve(in string) (p1, p2 uint64, err error) {
	a, err := almanac.LoadAlmanac(in)
	if err != nil {
		return 0, 0, err
	}
	p2, err = part2(a)
	if err != nil {
		return 0, 0, err
	}
	return part1(a), p2, nil
}

func main() {
	p1, p2, err := solve(input)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("Part 1:", p1)
	fmt.Println("Part 2:", p2)
}
