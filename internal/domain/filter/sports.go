package filter

import "strings"

// Sports is the closed catalog of disciplines a user may pick, covering
// every sport contested at the Summer and Winter Games since 1896.
var Sports = []string{
	"Aeronautics", "Alpine Skiing", "Alpinism", "Archery", "Art Competitions",
	"Athletics", "Badminton", "Baseball", "Basketball", "Basque Pelota",
	"Beach Volleyball", "Biathlon", "Bobsleigh", "Boxing", "Canoeing",
	"Cricket", "Croquet", "Cross Country Skiing", "Curling", "Cycling",
	"Diving", "Equestrianism", "Fencing", "Figure Skating", "Football",
	"Freestyle Skiing", "Golf", "Gymnastics", "Handball", "Hockey",
	"Ice Hockey", "Jeu De Paume", "Judo", "Lacrosse", "Luge",
	"Military Ski Patrol", "Modern Pentathlon", "Motorboating", "Nordic Combined", "Polo",
	"Racquets", "Rhythmic Gymnastics", "Roque", "Rowing", "Rugby",
	"Rugby Sevens", "Sailing", "Shooting", "Short Track Speed Skating", "Skeleton",
	"Ski Jumping", "Snowboarding", "Softball", "Speed Skating", "Swimming",
	"Synchronized Swimming", "Table Tennis", "Taekwondo", "Tennis", "Trampolining",
	"Triathlon", "Tug-Of-War", "Volleyball", "Water Polo", "Weightlifting",
	"Wrestling",
}

var sportIndex = func() map[string]string {
	m := make(map[string]string, len(Sports))
	for _, s := range Sports {
		m[strings.ToLower(s)] = s
	}
	return m
}()

// CanonicalSport returns the catalog spelling of name, matched without
// regard to case or surrounding space.
func CanonicalSport(name string) (string, bool) {
	s, ok := sportIndex[strings.ToLower(strings.TrimSpace(name))]
	return s, ok
}
