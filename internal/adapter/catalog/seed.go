package catalog

import (
	"time"

	"github.com/couchcryptid/neo-impact-service/internal/domain"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

type seedObject struct {
	domain.Object
	date        time.Time
	velocityKms float64
	missKm      float64
}

// Famous asteroids, comets, meteor showers and historical entry events with their notable
// approach. A miss distance of 0 marks an atmospheric entry.
var seedObjects = []seedObject{
	{domain.Object{ID: "99942", Name: "Apophis", Kind: "Asteroid", DiameterMinKm: 0.325, DiameterMaxKm: 0.375, IsHazardous: true, AbsoluteMagnitude: 19.7,
		Description: "Apophis is a potentially hazardous asteroid that will make an extremely close approach to Earth in 2029, passing closer than some satellites."},
		day(2029, time.April, 13), 7.42, 31000},
	{domain.Object{ID: "101955", Name: "Bennu", Kind: "Asteroid", DiameterMinKm: 0.492, DiameterMaxKm: 0.565, IsHazardous: true, AbsoluteMagnitude: 20.9,
		Description: "Bennu is a carbonaceous asteroid visited by NASA OSIRIS-REx mission, with samples successfully returned to Earth in 2023."},
		day(2025, time.September, 25), 28.07, 334000},
	{domain.Object{ID: "162173", Name: "Ryugu", Kind: "Asteroid", DiameterMinKm: 0.865, DiameterMaxKm: 0.915, AbsoluteMagnitude: 19.2,
		Description: "Ryugu is a diamond-shaped asteroid explored by Japan Hayabusa2 mission, revealing its rubble-pile structure and organic compounds."},
		day(2025, time.November, 15), 32.19, 1200000},
	{domain.Object{ID: "25143", Name: "Itokawa", Kind: "Asteroid", DiameterMinKm: 0.318, DiameterMaxKm: 0.535, AbsoluteMagnitude: 19.4,
		Description: "Itokawa is an elongated peanut-shaped asteroid, the first from which samples were successfully returned to Earth by Hayabusa mission."},
		day(2025, time.August, 10), 25.36, 890000},
	{domain.Object{ID: "433", Name: "Eros", Kind: "Asteroid", DiameterMinKm: 16.84, DiameterMaxKm: 16.84, AbsoluteMagnitude: 10.4,
		Description: "Eros is a large S-type asteroid, the first to be orbited by a spacecraft (NEAR Shoemaker) and later landed upon."},
		day(2025, time.January, 31), 23.04, 16700000},
	{domain.Object{ID: "4179", Name: "Toutatis", Kind: "Asteroid", DiameterMinKm: 2.4, DiameterMaxKm: 4.6, IsHazardous: true, AbsoluteMagnitude: 15.3,
		Description: "Toutatis is an elongated potentially hazardous asteroid with a complex tumbling rotation, studied extensively by radar."},
		day(2025, time.December, 12), 11.02, 7000000},
	{domain.Object{ID: "1566", Name: "Icarus", Kind: "Asteroid", DiameterMinKm: 1.0, DiameterMaxKm: 1.4, IsHazardous: true, AbsoluteMagnitude: 16.9,
		Description: "Icarus is a potentially hazardous asteroid with a highly eccentric orbit that brings it very close to the Sun."},
		day(2025, time.June, 16), 27.36, 6400000},
	{domain.Object{ID: "4", Name: "Vesta", Kind: "Asteroid", DiameterMinKm: 525.4, DiameterMaxKm: 525.4, AbsoluteMagnitude: 3.2,
		Description: "Vesta is one of the largest asteroids in the asteroid belt, visited by NASA Dawn spacecraft, with a differentiated interior."},
		day(2025, time.March, 20), 19.34, 234000000},
	{domain.Object{ID: "1", Name: "Ceres", Kind: "Dwarf Planet", DiameterMinKm: 939.4, DiameterMaxKm: 939.4, AbsoluteMagnitude: 3.36,
		Description: "Ceres is the largest object in the asteroid belt and the only dwarf planet in the inner solar system, with possible subsurface ocean."},
		day(2025, time.February, 14), 17.88, 263000000},
	{domain.Object{ID: "HALLEY", Name: "Halley's Comet", Kind: "Comet", DiameterMinKm: 15.0, DiameterMaxKm: 15.0, AbsoluteMagnitude: 5.1,
		Description: "Halley's Comet is the most famous comet, visible from Earth every 75-76 years, last seen in 1986, next return in 2061."},
		day(2061, time.July, 28), 70.56, 75000000},
	{domain.Object{ID: "HALE_BOPP", Name: "Hale-Bopp", Kind: "Comet", DiameterMinKm: 60.0, DiameterMaxKm: 60.0, AbsoluteMagnitude: 1.0,
		Description: "Hale-Bopp was one of the brightest comets of the 20th century, visible to the naked eye for 18 months in 1996-1997."},
		day(4385, time.April, 1), 44.0, 194000000},
	{domain.Object{ID: "NEOWISE", Name: "NEOWISE", Kind: "Comet", DiameterMinKm: 5.0, DiameterMaxKm: 5.0, AbsoluteMagnitude: 8.3,
		Description: "NEOWISE was a spectacular comet visible in 2020, won't return for about 6,800 years due to its long orbital period."},
		day(8786, time.July, 3), 62.8, 103000000},
	{domain.Object{ID: "TUNGUSKA", Name: "Tunguska Object", Kind: "Meteor/Asteroid", DiameterMinKm: 0.06, DiameterMaxKm: 0.19, IsHazardous: true, AbsoluteMagnitude: 22.0,
		Description: "The Tunguska event was a massive explosion in Siberia in 1908, likely caused by an asteroid or comet fragment, flattening 2,000 km² of forest."},
		day(1908, time.June, 30), 27.0, 0},
	{domain.Object{ID: "CHELYABINSK", Name: "Chelyabinsk Meteor", Kind: "Meteor", DiameterMinKm: 0.017, DiameterMaxKm: 0.020, IsHazardous: true, AbsoluteMagnitude: 24.4,
		Description: "The Chelyabinsk meteor exploded over Russia in 2013, injuring over 1,500 people and damaging thousands of buildings with its shockwave."},
		day(2013, time.February, 15), 19.16, 0},
	{domain.Object{ID: "16", Name: "Psyche", Kind: "Asteroid", DiameterMinKm: 226.0, DiameterMaxKm: 226.0, AbsoluteMagnitude: 5.9,
		Description: "Psyche is a metallic asteroid, possibly the exposed core of a protoplanet, target of NASA Psyche mission launching in 2023."},
		day(2025, time.May, 12), 20.1, 298000000},
	{domain.Object{ID: "2", Name: "Pallas", Kind: "Asteroid", DiameterMinKm: 512.0, DiameterMaxKm: 512.0, AbsoluteMagnitude: 4.13,
		Description: "Pallas is the third-largest asteroid in the asteroid belt, with an unusual highly inclined orbit and possible organic compounds."},
		day(2025, time.April, 8), 16.34, 287000000},
	{domain.Object{ID: "65803", Name: "Didymos", Kind: "Asteroid", DiameterMinKm: 0.78, DiameterMaxKm: 0.78, IsHazardous: true, AbsoluteMagnitude: 18.16,
		Description: "Didymos is a binary asteroid system, target of NASA DART mission that successfully altered the orbit of its moonlet Dimorphos in 2022."},
		day(2025, time.October, 5), 23.92, 10500000},
	{domain.Object{ID: "3200", Name: "Phaethon", Kind: "Asteroid", DiameterMinKm: 5.1, DiameterMaxKm: 5.1, IsHazardous: true, AbsoluteMagnitude: 14.6,
		Description: "Phaethon is a potentially hazardous asteroid that comes closer to the Sun than any other named asteroid, source of Geminid meteor shower."},
		day(2025, time.December, 14), 30.18, 10312000},
	{domain.Object{ID: "1950DA", Name: "1950 DA", Kind: "Asteroid", DiameterMinKm: 1.1, DiameterMaxKm: 1.4, IsHazardous: true, AbsoluteMagnitude: 17.1,
		Description: "1950 DA has a small chance of impacting Earth in 2880, making it one of the most closely monitored potentially hazardous asteroids."},
		day(2880, time.March, 16), 15.1, 1800000},
	{domain.Object{ID: "OUMUAMUA", Name: "Oumuamua", Kind: "Interstellar Object", DiameterMinKm: 0.1, DiameterMaxKm: 1.0, AbsoluteMagnitude: 22.0,
		Description: "Oumuamua was the first confirmed interstellar object to visit our solar system, with an unusual elongated shape and mysterious acceleration."},
		day(2017, time.October, 19), 87.3, 24000000},
	{domain.Object{ID: "LEONIDS", Name: "Leonids Meteor Shower", Kind: "Meteor Shower", DiameterMinKm: 0.001, DiameterMaxKm: 0.01, AbsoluteMagnitude: 25.0,
		Description: "The Leonids are a prolific meteor shower associated with comet Tempel-Tuttle, producing spectacular meteor storms every 33 years."},
		day(2024, time.November, 17), 71.0, 0},
	{domain.Object{ID: "PERSEIDS", Name: "Perseids Meteor Shower", Kind: "Meteor Shower", DiameterMinKm: 0.001, DiameterMaxKm: 0.005, AbsoluteMagnitude: 26.0,
		Description: "The Perseids are the most popular meteor shower, originating from comet Swift-Tuttle and producing up to 100 meteors per hour."},
		day(2024, time.August, 12), 59.0, 0},
	{domain.Object{ID: "GEMINIDS", Name: "Geminids Meteor Shower", Kind: "Meteor Shower", DiameterMinKm: 0.001, DiameterMaxKm: 0.008, AbsoluteMagnitude: 25.5,
		Description: "The Geminids are the most active meteor shower, originating from asteroid 3200 Phaethon and producing colorful, slow-moving meteors."},
		day(2024, time.December, 14), 35.0, 0},
	{domain.Object{ID: "QUADRANTIDS", Name: "Quadrantids Meteor Shower", Kind: "Meteor Shower", DiameterMinKm: 0.001, DiameterMaxKm: 0.006, AbsoluteMagnitude: 25.8,
		Description: "The Quadrantids have a sharp peak lasting only a few hours, originating from asteroid 2003 EH1 and producing bright blue meteors."},
		day(2025, time.January, 4), 41.0, 0},
	{domain.Object{ID: "DRACONIDS", Name: "Draconids Meteor Shower", Kind: "Meteor Shower", DiameterMinKm: 0.001, DiameterMaxKm: 0.004, AbsoluteMagnitude: 26.5,
		Description: "The Draconids are associated with comet 21P/Giacobini-Zinner and occasionally produce meteor storms with thousands of meteors per hour."},
		day(2024, time.October, 8), 20.0, 0},
	{domain.Object{ID: "3", Name: "Juno", Kind: "Asteroid", DiameterMinKm: 233.9, DiameterMaxKm: 233.9, AbsoluteMagnitude: 5.33,
		Description: "Juno is one of the largest asteroids in the main belt, discovered in 1804 and named after the Roman goddess."},
		day(2025, time.March, 15), 18.2, 298000000},
	{domain.Object{ID: "10", Name: "Hygiea", Kind: "Asteroid", DiameterMinKm: 407.12, DiameterMaxKm: 407.12, AbsoluteMagnitude: 5.43,
		Description: "Hygiea is the fourth-largest asteroid and the largest C-type asteroid, potentially qualifying as a dwarf planet."},
		day(2025, time.April, 22), 16.8, 312000000},
	{domain.Object{ID: "243", Name: "Ida", Kind: "Asteroid", DiameterMinKm: 31.4, DiameterMaxKm: 31.4, AbsoluteMagnitude: 9.94,
		Description: "Ida was the first asteroid discovered to have a natural satellite (Dactyl), visited by the Galileo spacecraft."},
		day(2025, time.June, 8), 22.1, 187000000},
	{domain.Object{ID: "951", Name: "Gaspra", Kind: "Asteroid", DiameterMinKm: 12.2, DiameterMaxKm: 12.2, AbsoluteMagnitude: 11.46,
		Description: "Gaspra was the first asteroid to be closely approached by a spacecraft (Galileo) and photographed in detail."},
		day(2025, time.July, 19), 24.3, 156000000},
	{domain.Object{ID: "ENCKE", Name: "Encke Comet", Kind: "Comet", DiameterMinKm: 4.8, DiameterMaxKm: 4.8, AbsoluteMagnitude: 9.2,
		Description: "Comet Encke has the shortest orbital period of any known comet at 3.3 years, source of the Taurid meteor showers."},
		day(2024, time.October, 25), 69.9, 64000000},
	{domain.Object{ID: "SHOEMAKER_LEVY", Name: "Shoemaker-Levy 9", Kind: "Comet", DiameterMinKm: 2.0, DiameterMaxKm: 2.0, AbsoluteMagnitude: 14.0,
		Description: "Shoemaker-Levy 9 famously collided with Jupiter in 1994, providing the first direct observation of an extraterrestrial collision."},
		day(1994, time.July, 16), 60.0, 0},
	{domain.Object{ID: "TEMPEL1", Name: "Tempel 1", Kind: "Comet", DiameterMinKm: 7.6, DiameterMaxKm: 7.6, AbsoluteMagnitude: 8.5,
		Description: "Tempel 1 was the target of NASA Deep Impact mission, which deliberately crashed an impactor into the comet in 2005."},
		day(2025, time.July, 5), 28.6, 133000000},
	{domain.Object{ID: "WILD2", Name: "Wild 2", Kind: "Comet", DiameterMinKm: 5.5, DiameterMaxKm: 5.5, AbsoluteMagnitude: 9.6,
		Description: "Wild 2 was visited by NASA Stardust mission, which collected samples from its coma and returned them to Earth."},
		day(2025, time.May, 12), 20.0, 240000000},
	{domain.Object{ID: "HARTLEY2", Name: "Hartley 2", Kind: "Comet", DiameterMinKm: 2.2, DiameterMaxKm: 2.2, AbsoluteMagnitude: 13.5,
		Description: "Hartley 2 was visited by NASA EPOXI mission, revealing a peanut-shaped nucleus with active jets of gas and dust."},
		day(2024, time.October, 20), 12.4, 18000000},
}

// SeedObjects returns the built-in catalog, each object carrying its notable
// close approach. The slice is freshly allocated on every call.
func SeedObjects() []domain.Object {
	objects := make([]domain.Object, 0, len(seedObjects))
	for _, s := range seedObjects {
		obj := s.Object
		obj.Approaches = []domain.CloseApproach{
			domain.NewCloseApproach(obj.ID, s.date, s.velocityKms, s.missKm),
		}
		objects = append(objects, obj)
	}
	return objects
}
