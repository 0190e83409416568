package optimizer

// Example2D is the sample platformer offered on the 2D optimizer page.
const Example2D = `// Basic platformer game
let playerX = 100;
let playerY = 300;
let playerSpeed = 5;
let gravity = 0.5;
let velocity = 0;
let isJumping = false;
let platforms = [{x: 0, y: 350, width: 400, height: 20}];

function setup() {
  createCanvas(800, 600);
}

function draw() {
  background(135, 206, 235);

  // Apply gravity
  velocity += gravity;
  playerY += velocity;

  // Check platform collisions
  for (let i = 0; i < platforms.length; i++) {
    let p = platforms[i];
    rect(p.x, p.y, p.width, p.height);

    if (playerX > p.x && playerX < p.x + p.width &&
        playerY > p.y && playerY < p.y + p.height) {
      playerY = p.y;
      velocity = 0;
      isJumping = false;
    }
  }

  // Draw player
  fill(255, 0, 0);
  rect(playerX, playerY, 30, 30);

  // Move player
  if (keyIsDown(LEFT_ARROW)) {
    playerX -= playerSpeed;
  }
  if (keyIsDown(RIGHT_ARROW)) {
    playerX += playerSpeed;
  }
}

function keyPressed() {
  if (keyCode === UP_ARROW && !isJumping) {
    velocity = -12;
    isJumping = true;
  }
}`
