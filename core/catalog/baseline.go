// Package catalog - Compiled-in baseline inventory
// This is the dataset every deployment starts from; overrides layer on top.
package catalog

import "pcbuild/core/types"

// Baseline returns a fresh copy of the compiled-in catalog
func Baseline() types.Catalog {
	c := types.Catalog{}
	registerCPUs(c)
	registerMainboards(c)
	registerGPUs(c)
	registerMemory(c)
	registerStorage(c)
	registerPower(c)
	registerCases(c)
	registerCoolers(c)
	registerMonitors(c)
	return c
}

func registerCPUs(c types.Catalog) {
	// Intel
	c.Put(types.CategoryCPU, types.ComponentRecord{ID: "12100f", Name: "Intel Core i3-12100F", Price: 2190000, Socket: "LGA1700", DDR: types.DDR4, Brand: "intel", Warranty: "36 tháng", Condition: types.ConditionNew})
	c.Put(types.CategoryCPU, types.ComponentRecord{ID: "12400f", Name: "Intel Core i5-12400F", Price: 2690000, Socket: "LGA1700", DDR: types.DDR4, Brand: "intel", Warranty: "36 tháng", Condition: types.ConditionNew})
	c.Put(types.CategoryCPU, types.ComponentRecord{ID: "13400f", Name: "Intel Core i5-13400F", Price: 3990000, Socket: "LGA1700", DDR: types.DDR4, Brand: "intel", Warranty: "36 tháng", Condition: types.ConditionNew})
	c.Put(types.CategoryCPU, types.ComponentRecord{ID: "14600kf", Name: "Intel Core i5-14600KF", Price: 6290000, Socket: "LGA1700", DDR: types.DDR5, Brand: "intel", Warranty: "36 tháng", Condition: types.ConditionNew})
	c.Put(types.CategoryCPU, types.ComponentRecord{ID: "14700k", Name: "Intel Core i7-14700K", Price: 9490000, Socket: "LGA1700", DDR: types.DDR5, Brand: "intel", Warranty: "36 tháng", Condition: types.ConditionNew})
	c.Put(types.CategoryCPU, types.ComponentRecord{ID: "14900k", Name: "Intel Core i9-14900K", Price: 13990000, Socket: "LGA1700", DDR: types.DDR5, Brand: "intel", Warranty: "36 tháng", Condition: types.ConditionNew})
	// Used parts carry no structured socket; inference fills it in.
	c.Put(types.CategoryCPU, types.ComponentRecord{ID: "10400f", Name: "Intel Core i5-10400F", Price: 1590000, Brand: "intel", Warranty: "12 tháng", Condition: types.ConditionUsed})
	c.Put(types.CategoryCPU, types.ComponentRecord{ID: "e3-1230v3", Name: "Intel Xeon E3-1230 v3", Price: 450000, Brand: "intel", Warranty: "3 tháng", Condition: types.ConditionUsed})

	// AMD
	c.Put(types.CategoryCPU, types.ComponentRecord{ID: "5600", Name: "AMD Ryzen 5 5600", Price: 2590000, Socket: "AM4", DDR: types.DDR4, Brand: "amd", Warranty: "36 tháng", Condition: types.ConditionNew})
	c.Put(types.CategoryCPU, types.ComponentRecord{ID: "5700x3d", Name: "AMD Ryzen 7 5700X3D", Price: 5290000, Socket: "AM4", DDR: types.DDR4, Brand: "amd", Warranty: "36 tháng", Condition: types.ConditionNew})
	c.Put(types.CategoryCPU, types.ComponentRecord{ID: "7500f", Name: "AMD Ryzen 5 7500F", Price: 3690000, Socket: "AM5", DDR: types.DDR5, Brand: "amd", Warranty: "36 tháng", Condition: types.ConditionNew})
	c.Put(types.CategoryCPU, types.ComponentRecord{ID: "7800x3d", Name: "AMD Ryzen 7 7800X3D", Price: 10490000, Socket: "AM5", DDR: types.DDR5, Brand: "amd", Warranty: "36 tháng", Condition: types.ConditionNew})
	c.Put(types.CategoryCPU, types.ComponentRecord{ID: "3600", Name: "AMD Ryzen 5 3600", Price: 1290000, Brand: "amd", Warranty: "6 tháng", Condition: types.ConditionUsed})
}

func registerMainboards(c types.Catalog) {
	c.Put(types.CategoryMainboard, types.ComponentRecord{ID: "H610M-K", Name: "ASUS PRIME H610M-K D4", Price: 1790000, Socket: "LGA1700", DDR: types.DDR4, Brand: "ASUS", Warranty: "36 tháng", Condition: types.ConditionNew})
	c.Put(types.CategoryMainboard, types.ComponentRecord{ID: "B760M-D4", Name: "GIGABYTE B760M GAMING X DDR4", Price: 2890000, Socket: "LGA1700", DDR: types.DDR4, Brand: "GIGABYTE", Warranty: "36 tháng", Condition: types.ConditionNew})
	c.Put(types.CategoryMainboard, types.ComponentRecord{ID: "B760M-E", Name: "ASUS PRIME B760M-E", Price: 2990000, Socket: "LGA1700", DDR: types.DDR5, Brand: "ASUS", Warranty: "36 tháng", Condition: types.ConditionNew})
	c.Put(types.CategoryMainboard, types.ComponentRecord{ID: "Z790-P", Name: "ASUS PRIME Z790-P WIFI", Price: 5490000, Socket: "LGA1700", DDR: types.DDR5, Brand: "ASUS", Warranty: "36 tháng", Condition: types.ConditionNew})
	c.Put(types.CategoryMainboard, types.ComponentRecord{ID: "B450M", Name: "MSI B450M PRO-VDH MAX", Price: 1590000, Socket: "AM4", DDR: types.DDR4, Brand: "MSI", Warranty: "36 tháng", Condition: types.ConditionNew})
	c.Put(types.CategoryMainboard, types.ComponentRecord{ID: "B550M", Name: "GIGABYTE B550M AORUS ELITE", Price: 2490000, Socket: "AM4", DDR: types.DDR4, Brand: "GIGABYTE", Warranty: "36 tháng", Condition: types.ConditionNew})
	c.Put(types.CategoryMainboard, types.ComponentRecord{ID: "B650M", Name: "ASUS TUF GAMING B650M-PLUS", Price: 3990000, Socket: "AM5", DDR: types.DDR5, Brand: "ASUS", Warranty: "36 tháng", Condition: types.ConditionNew})
	c.Put(types.CategoryMainboard, types.ComponentRecord{ID: "X670E", Name: "GIGABYTE X670E AORUS MASTER", Price: 9990000, Socket: "AM5", DDR: types.DDR5, Brand: "GIGABYTE", Warranty: "36 tháng", Condition: types.ConditionNew})
	// Second-hand boards: socket from chipset, memory from name
	c.Put(types.CategoryMainboard, types.ComponentRecord{ID: "H510M", Name: "GIGABYTE H510M-H DDR4", Price: 890000, Brand: "GIGABYTE", Warranty: "6 tháng", Condition: types.ConditionUsed})
	c.Put(types.CategoryMainboard, types.ComponentRecord{ID: "H81M", Name: "GIGABYTE GA-H81M-DS2 DDR3", Price: 390000, Brand: "GIGABYTE", Warranty: "3 tháng", Condition: types.ConditionUsed})
}

func registerGPUs(c types.Catalog) {
	c.Put(types.CategoryVGA, types.ComponentRecord{ID: "gtx1650", Name: "GIGABYTE GTX 1650 D6 OC 4G", Price: 3290000, Tier: 2, Brand: "GIGABYTE", Warranty: "36 tháng", Condition: types.ConditionNew})
	c.Put(types.CategoryVGA, types.ComponentRecord{ID: "rtx3060", Name: "MSI RTX 3060 VENTUS 2X 12G", Price: 6990000, Tier: 3, Brand: "MSI", Warranty: "36 tháng", Condition: types.ConditionNew})
	c.Put(types.CategoryVGA, types.ComponentRecord{ID: "rtx4060ti", Name: "ASUS DUAL RTX 4060 Ti 8G", Price: 10490000, Tier: 4, Brand: "ASUS", Warranty: "36 tháng", Condition: types.ConditionNew})
	c.Put(types.CategoryVGA, types.ComponentRecord{ID: "rtx4070super", Name: "GIGABYTE RTX 4070 SUPER WINDFORCE 12G", Price: 16990000, Tier: 5, Brand: "GIGABYTE", Warranty: "36 tháng", Condition: types.ConditionNew})
	c.Put(types.CategoryVGA, types.ComponentRecord{ID: "rtx4080super", Name: "ASUS TUF RTX 4080 SUPER 16G", Price: 29990000, Tier: 6, Brand: "ASUS", Warranty: "36 tháng", Condition: types.ConditionNew})
	c.Put(types.CategoryVGA, types.ComponentRecord{ID: "rx6600", Name: "ASRock RX 6600 Challenger 8G", Price: 4990000, Tier: 3, Brand: "ASRock", Warranty: "36 tháng", Condition: types.ConditionNew})
}

func registerMemory(c types.Catalog) {
	c.Put(types.CategoryRAM, types.ComponentRecord{ID: "kingston-8", Name: "Kingston Fury Beast 8GB DDR4 3200", Price: 490000, DDR: types.DDR4, CapacityGB: 8, Brand: "Kingston", Warranty: "36 tháng", Condition: types.ConditionNew})
	c.Put(types.CategoryRAM, types.ComponentRecord{ID: "cosair-16", Name: "Corsair Vengeance LPX 16GB (2x8) DDR4 3200", Price: 990000, DDR: types.DDR4, CapacityGB: 16, Brand: "Corsair", Warranty: "36 tháng", Condition: types.ConditionNew})
	c.Put(types.CategoryRAM, types.ComponentRecord{ID: "gskill-32-d4", Name: "G.Skill Ripjaws V 32GB (2x16) DDR4 3600", Price: 1890000, DDR: types.DDR4, CapacityGB: 32, Brand: "G.Skill", Warranty: "36 tháng", Condition: types.ConditionNew})
	c.Put(types.CategoryRAM, types.ComponentRecord{ID: "kingston-16-d5", Name: "Kingston Fury Beast 16GB DDR5 5600", Price: 1290000, DDR: types.DDR5, CapacityGB: 16, Brand: "Kingston", Warranty: "36 tháng", Condition: types.ConditionNew})
	c.Put(types.CategoryRAM, types.ComponentRecord{ID: "cosair-32", Name: "Corsair Vengeance 32GB (2x16) DDR5 6000", Price: 2690000, DDR: types.DDR5, CapacityGB: 32, Brand: "Corsair", Warranty: "36 tháng", Condition: types.ConditionNew})
	c.Put(types.CategoryRAM, types.ComponentRecord{ID: "ddr3-8", Name: "Samsung 8GB DDR3 1600", Price: 190000, CapacityGB: 8, Brand: "Samsung", Warranty: "3 tháng", Condition: types.ConditionUsed})
}

func registerStorage(c types.Catalog) {
	c.Put(types.CategorySSD, types.ComponentRecord{ID: "ssd-500", Name: "Kingston NV2 500GB NVMe", Price: 890000, CapacityGB: 500, Brand: "Kingston", Warranty: "36 tháng", Condition: types.ConditionNew})
	c.Put(types.CategorySSD, types.ComponentRecord{ID: "ssd-1tb", Name: "Samsung 980 1TB NVMe", Price: 1890000, CapacityGB: 1000, Brand: "Samsung", Warranty: "60 tháng", Condition: types.ConditionNew})
	c.Put(types.CategorySSD, types.ComponentRecord{ID: "ssd-2tb", Name: "WD Black SN850X 2TB NVMe", Price: 3990000, CapacityGB: 2000, Brand: "WD", Warranty: "60 tháng", Condition: types.ConditionNew})
	c.Put(types.CategoryHDD, types.ComponentRecord{ID: "hdd-1tb", Name: "Seagate Barracuda 1TB 7200rpm", Price: 1090000, CapacityGB: 1000, Brand: "Seagate", Warranty: "24 tháng", Condition: types.ConditionNew})
	c.Put(types.CategoryHDD, types.ComponentRecord{ID: "hdd-2tb", Name: "WD Blue 2TB 7200rpm", Price: 1490000, CapacityGB: 2000, Brand: "WD", Warranty: "24 tháng", Condition: types.ConditionNew})
}

func registerPower(c types.Catalog) {
	c.Put(types.CategoryPSU, types.ComponentRecord{ID: "psu-450", Name: "Cooler Master Elite 450W", Price: 690000, Wattage: 450, Brand: "Cooler Master", Warranty: "36 tháng", Condition: types.ConditionNew})
	c.Put(types.CategoryPSU, types.ComponentRecord{ID: "psu-550", Name: "Corsair CV550 550W 80+ Bronze", Price: 1090000, Wattage: 550, Brand: "Corsair", Warranty: "36 tháng", Condition: types.ConditionNew})
	c.Put(types.CategoryPSU, types.ComponentRecord{ID: "psu-650", Name: "Corsair CV650 650W 80+ Bronze", Price: 1390000, Wattage: 650, Brand: "Corsair", Warranty: "36 tháng", Condition: types.ConditionNew})
	c.Put(types.CategoryPSU, types.ComponentRecord{ID: "psu-750", Name: "MSI MAG A750GL 750W 80+ Gold", Price: 2190000, Wattage: 750, Brand: "MSI", Warranty: "60 tháng", Condition: types.ConditionNew})
	c.Put(types.CategoryPSU, types.ComponentRecord{ID: "psu-850", Name: "Corsair RM850e 850W 80+ Gold", Price: 2990000, Wattage: 850, Brand: "Corsair", Warranty: "84 tháng", Condition: types.ConditionNew})
}

func registerCases(c types.Catalog) {
	c.Put(types.CategoryCase, types.ComponentRecord{ID: "case-mini", Name: "Xigmatek NYX 3F mATX", Price: 590000, Brand: "Xigmatek", Warranty: "12 tháng", Condition: types.ConditionNew})
	c.Put(types.CategoryCase, types.ComponentRecord{ID: "case-mid", Name: "Corsair 4000D Airflow ATX", Price: 2190000, Brand: "Corsair", Warranty: "24 tháng", Condition: types.ConditionNew})
}

func registerCoolers(c types.Catalog) {
	c.Put(types.CategoryCPUCooler, types.ComponentRecord{ID: "stock", Name: "Tản nhiệt stock theo CPU", Price: 0, CoolerType: types.CoolerStock, Condition: types.ConditionNew})
	c.Put(types.CategoryCPUCooler, types.ComponentRecord{ID: "air-ak400", Name: "DeepCool AK400", Price: 690000, CoolerType: types.CoolerAir, Sockets: []string{"LGA1700", "LGA1200", "LGA1151", "AM4", "AM5"}, Brand: "DeepCool", Warranty: "12 tháng", Condition: types.ConditionNew})
	c.Put(types.CategoryCPUCooler, types.ComponentRecord{ID: "liquid-240", Name: "DeepCool LE520 240mm AIO", Price: 1690000, CoolerType: types.CoolerLiquid, Sockets: []string{"LGA1700", "1200", "AM4", "AM5"}, Brand: "DeepCool", Warranty: "36 tháng", Condition: types.ConditionNew})
	c.Put(types.CategoryCPUCooler, types.ComponentRecord{ID: "air-legacy", Name: "Cooler Master Hyper 212 (LGA115x)", Price: 390000, CoolerType: types.CoolerAir, Sockets: []string{"LGA1150", "LGA1155"}, Brand: "Cooler Master", Warranty: "6 tháng", Condition: types.ConditionUsed})
}

func registerMonitors(c types.Catalog) {
	c.Put(types.CategoryMonitor, types.ComponentRecord{ID: "monitor-24", Name: "LG 24GS60F 24\" IPS 180Hz", Price: 2890000, Brand: "LG", Warranty: "24 tháng", Condition: types.ConditionNew})
	c.Put(types.CategoryMonitor, types.ComponentRecord{ID: "monitor-27", Name: "ASUS TUF VG27AQ3A 27\" 2K 180Hz", Price: 5490000, Brand: "ASUS", Warranty: "36 tháng", Condition: types.ConditionNew})
}
