// SPDX-License-Identifier: MIT
package standard

// Literals use the grid text format, top row first:
// '#' Wall  '.' Pellet  'o' PowerPellet  '-' Empty  'n' GhostChamber  'c' Cherry

// blankText is solid wall except the single cell (1,1).
const blankText = `
############################
############################
############################
############################
############################
############################
############################
############################
############################
############################
############################
############################
############################
############################
############################
############################
############################
############################
############################
############################
############################
############################
############################
############################
############################
############################
############################
############################
############################
#-##########################
############################
`

// outerText opens only the ring of cells just inside the border.
const outerText = `
############################
#--------------------------#
#-########################-#
#-########################-#
#-########################-#
#-########################-#
#-########################-#
#-########################-#
#-########################-#
#-########################-#
#-########################-#
#-########################-#
#-########################-#
#-########################-#
#-########################-#
#-########################-#
#-########################-#
#-########################-#
#-########################-#
#-########################-#
#-########################-#
#-########################-#
#-########################-#
#-########################-#
#-########################-#
#-########################-#
#-########################-#
#-########################-#
#-########################-#
#--------------------------#
############################
`

// pacmanText is the official arena. The ghost house is GhostChamber, the
// side tunnels are sealed, and the cherry spawns below the ghost house.
const pacmanText = `
############################
#............##............#
#.####.#####.##.#####.####.#
#o####.#####.##.#####.####o#
#.####.#####.##.#####.####.#
#..........................#
#.####.##.########.##.####.#
#.####.##.########.##.####.#
#......##....##....##......#
######.#####-##-#####.######
######.#####-##-#####.######
######.##----------##.######
######.##-###nn###-##.######
######.##-#nnnnnn#-##.######
######.---#nnnnnn#---.######
######.##-#nnnnnn#-##.######
######.##-########-##.######
######.##----c-----##.######
######.##-########-##.######
######.##-########-##.######
#............##............#
#.####.#####.##.#####.####.#
#.####.#####.##.#####.####.#
#o..##.......--.......##..o#
###.##.##.########.##.##.###
###.##.##.########.##.##.###
#......##....##....##......#
#.##########.##.##########.#
#.##########.##.##########.#
#..........................#
############################
`

// playgroundText is a lattice of one-cell corridors with a few segments
// closed off, for practising turns.
const playgroundText = `
############################
#o.......................o##
#.#.###.#.#.#.#.#.#.#.#.#.##
#...........#.............##
#.#.#.#.###.#.#.#.#.#.#.#.##
#.........................##
#.#.#.#.#.#.###.#.#.#.#.#.##
#...................#.....##
#.#.#.#.#.#.#.#.###.#.#.#.##
#.........................##
#.#.#.#.#.#.#.#.#.#.###.#.##
#...............#.........##
#.###.#.#.#.#.#.#.#.#.#.#.##
#.........................##
#.#.#.###.#.#.#.#.#.#.#.#.##
#.......................#.##
#.#.#.#.#.###.#.#.#.#.#.#.##
#.........................##
#.#.#.#.#.#.#.###.#.#.#.#.##
#.......#.................##
#.#.#.#.#.#.#.#.#.###.#.#.##
#.........................##
#.#.#.#.#.#.#.#.#.#.#.###.##
#...#.....................##
#.#.###.#.#.#.#.#.#.#.#.#.##
#.........................##
#.#.#.#.###.#.#.#.#.#.#.#.##
#.................#.......##
#.#.#.#.#.#.###.#.#.#.#.#.##
#o.......................o##
############################
`
