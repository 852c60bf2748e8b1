package component

import "github.com/milk9111/clickwalk/nav"

var NavigationComponent = NewComponent[nav.Navigator]()
