package constants

// MenuChoice identifies an entry of the interactive menu
type MenuChoice string

const (
	MenuCreate        MenuChoice = "1"
	MenuList          MenuChoice = "2"
	MenuCheckOff      MenuChoice = "3"
	MenuFilter        MenuChoice = "4"
	MenuLongestAll    MenuChoice = "5"
	MenuLongestForOne MenuChoice = "6"
	MenuExit          MenuChoice = "7"
)

// MenuLabels maps each choice to its menu text, in display order
var MenuLabels = []struct {
	Choice MenuChoice
	Label  string
}{
	{MenuCreate, "Create a new habit"},
	{MenuList, "View all habits"},
	{MenuCheckOff, "Check off a habit"},
	{MenuFilter, "View habits by periodicity"},
	{MenuLongestAll, "View longest overall streak"},
	{MenuLongestForOne, "View longest streak for a specific habit"},
	{MenuExit, "Exit"},
}
