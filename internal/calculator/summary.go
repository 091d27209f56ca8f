package calculator

// MemberMarks is the part of a member the summary needs.
type MemberMarks struct {
	Read bool
	Paid bool
}

// Summary holds per-collection member statistics.
type Summary struct {
	TotalMembers  int64
	ReadMembers   int64
	PaidMembers   int64
	CurrentAmount int64
}

// Summarize counts members and estimates the collected amount.
//
// CurrentAmount assumes every member owes an equal share:
// floor(paid / total × amount). The amount is split into whole shares and a
// remainder so the product stays within int64 for any non-negative amount.
// With no members it is 0.
func Summarize(amount int64, members []MemberMarks) Summary {
	s := Summary{TotalMembers: int64(len(members))}
	for _, m := range members {
		if m.Read {
			s.ReadMembers++
		}
		if m.Paid {
			s.PaidMembers++
		}
	}
	if s.TotalMembers > 0 {
		share, rem := amount/s.TotalMembers, amount%s.TotalMembers
		s.CurrentAmount = share*s.PaidMembers + rem*s.PaidMembers/s.TotalMembers
	}
	return s
}
