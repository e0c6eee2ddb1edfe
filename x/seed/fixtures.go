package seed

import (
	"github.com/totegamma/fellowship/core"
)

// Races are inserted in this order, so their ids are 1..len(Races)
var Races = []core.Race{
	{Name: "Hobbits", Dominions: "The Shire, Buckland, Bree", Languages: "Hobbit-speech, Westron", Lifespan: "Generally past one-hundred years", Height: "60-120 cm"},
	{Name: "Men", Dominions: "Gondor, Rohan, Dale, Bree, Harad, Rhûn", Languages: "Westron, Rohirric, Dunlendish, Sindarin", Lifespan: "Around 80 years, Dúnedain up to 200 years", Height: "150-200 cm"},
	{Name: "Elves", Dominions: "Lindon, Rivendell, Lothlórien, Mirkwood", Languages: "Quenya, Sindarin, Nandorin", Lifespan: "Immortal", Height: "180-200 cm"},
	{Name: "Dwarves", Dominions: "Erebor, Iron Hills, Moria, Blue Mountains", Languages: "Khuzdul, Westron", Lifespan: "Around 250 years", Height: "120-150 cm"},
	{Name: "Maiar", Dominions: "Valinor, Middle-earth", Languages: "Valarin, Quenya, Sindarin, Westron", Lifespan: "Immortal", Height: "Varies with chosen form"},
	{Name: "Ents", Dominions: "Fangorn Forest", Languages: "Entish, Quenya, Sindarin", Lifespan: "Many thousands of years", Height: "Around 4 m"},
	{Name: "Orcs", Dominions: "Mordor, Misty Mountains, Moria, Isengard", Languages: "Black Speech, Orkish dialects, Westron", Lifespan: "Unknown", Height: "120-180 cm"},
	{Name: "Uruk-hai", Dominions: "Isengard, Mordor", Languages: "Black Speech, Westron", Lifespan: "Unknown", Height: "180-190 cm"},
	{Name: "Wargs", Dominions: "Misty Mountains, Isengard, Mount Gundabad, Mordor", Languages: "Wolf-language, possibly Westron or Black Speech", Lifespan: "10-20 years", Height: "120-150 cm"},
}

// Characters are inserted in this order, so their ids are 1..len(Characters)
var Characters = []core.Character{
	{Name: "Frodo Baggins", Origin: "The Shire", FellowshipMember: true, Weapon: "Sting"},
	{Name: "Gandalf", Origin: "Valinor", FellowshipMember: true, Weapon: "Glamdring"},
	{Name: "Aragorn", Origin: "Rivendell", FellowshipMember: true, Weapon: "Andúril"},
	{Name: "Legolas", Origin: "Mirkwood", FellowshipMember: true, Weapon: "Bow of the Galadhrim"},
	{Name: "Gimli", Origin: "Erebor", FellowshipMember: true, Weapon: "Axe"},
	{Name: "Boromir", Origin: "Gondor", FellowshipMember: true, Weapon: "Sword and shield"},
	{Name: "Samwise Gamgee", Origin: "The Shire", FellowshipMember: true, Weapon: "Barrow-blade"},
	{Name: "Meriadoc Brandybuck", Origin: "Buckland", FellowshipMember: true, Weapon: "Barrow-blade"},
	{Name: "Peregrin Took", Origin: "The Shire", FellowshipMember: true, Weapon: "Barrow-blade"},
	{Name: "Saruman", Origin: "Valinor", Weapon: "Staff"},
	{Name: "Sauron", Origin: "Valinor", Weapon: "Mace"},
	{Name: "Gollum", Origin: "Gladden Fields", Weapon: "Bare hands"},
	{Name: "Galadriel", Origin: "Valinor", Weapon: "Nenya"},
	{Name: "Bilbo Baggins", Origin: "The Shire", Weapon: "Sting"},
	{Name: "Elrond", Origin: "Beleriand", Weapon: "Hadhafang"},
	{Name: "Théoden", Origin: "Rohan", Weapon: "Herugrim"},
	{Name: "Éowyn", Origin: "Rohan", Weapon: "Sword"},
	{Name: "Faramir", Origin: "Gondor", Weapon: "Bow"},
	{Name: "Treebeard", Origin: "Fangorn Forest", Weapon: "Bare branches"},
	{Name: "Lurtz", Origin: "Isengard", Weapon: "Uruk bow"},
}

// Associations maps a race id to the ids of its characters.
// Orcs and Wargs start empty and Gollum has no race.
var Associations = map[uint][]uint{
	1: {1, 7, 8, 9, 14},
	2: {3, 6, 16, 17, 18},
	3: {4, 13, 15},
	4: {5},
	5: {2, 10, 11},
	6: {19},
	8: {20},
}
