package directory

import (
	"cmp"
	"slices"

	"phonebook"
	"phonebook/internal"
)

func (d *Directory) SearchUsersByNumber(prefix string, count int) []phonebook.UserInfo {
	if count <= 0 {
		return []phonebook.UserInfo{}
	}

	found := make([]phonebook.UserInfo, 0)
	rng := d.users.Range(prefix)
	for rng.Next() {
		number, recb := rng.Value()
		rec, err := d.codec.Decode(recb)
		if err != nil {
			panic("decoding stored record " + number + ": " + err.Error())
		}
		found = append(found, rec.info(number))
	}

	return top(found, count, byDuration)
}

func (d *Directory) SearchUsersByName(prefix string, count int) []phonebook.UserInfo {
	if count <= 0 {
		return []phonebook.UserInfo{}
	}

	found := make([]phonebook.UserInfo, 0)
	rng := d.names.Range(prefix)
	for rng.Next() {
		_, numbers := rng.Value()
		for _, number := range numbers {
			rec, ok := internal.Find(d.users, d.codec, number)
			if !ok {
				panic("name index points to missing user " + number)
			}
			found = append(found, rec.info(number))
		}
	}

	return top(found, count, byName)
}

// top sorts infos and keeps at most count of them.
func top(infos []phonebook.UserInfo, count int, order func(a, b phonebook.UserInfo) int) []phonebook.UserInfo {
	slices.SortFunc(infos, order)
	return infos[:min(count, len(infos))]
}

// byDuration orders by total call duration descending, then name, then number.
func byDuration(a, b phonebook.UserInfo) int {
	if c := descending(a.TotalCallDuration, b.TotalCallDuration); c != 0 {
		return c
	}
	if c := cmp.Compare(a.User.Name, b.User.Name); c != 0 {
		return c
	}
	return cmp.Compare(a.User.Number, b.User.Number)
}

// byName orders by name, then total call duration descending, then number.
func byName(a, b phonebook.UserInfo) int {
	if c := cmp.Compare(a.User.Name, b.User.Name); c != 0 {
		return c
	}
	if c := descending(a.TotalCallDuration, b.TotalCallDuration); c != 0 {
		return c
	}
	return cmp.Compare(a.User.Number, b.User.Number)
}

func descending[T cmp.Ordered](a, b T) int {
	return cmp.Compare(b, a)
}
