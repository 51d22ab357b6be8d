package tags

import "github.com/yohamta/donburi"

var (
	ScrollView = donburi.NewTag().SetName("ScrollView")
)
